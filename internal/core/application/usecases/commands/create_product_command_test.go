package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand("p1", "Product 1", decimal.RequireFromString("9.90"))

		require.NoError(t, err)
		assert.Equal(t, "p1", cmd.ProductID())
		assert.Equal(t, "Product 1", cmd.Name())
		assert.True(t, decimal.RequireFromString("9.9").Equal(cmd.Price()))
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("p1", "Product 1", decimal.NewFromInt(-1))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing id and name", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand("", "", decimal.Zero)

		assert.ErrorIs(t, err, commands.ErrProductIDIsRequired)
		assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	})
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProductCommand("p1", "Product 1", decimal.NewFromInt(10))

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Create", ctx, mock.MatchedBy(func(p *product.Product) bool {
			recorded := p.DomainEvents()
			if len(recorded) != 1 {
				return false
			}
			created, ok := recorded[0].(product.ProductCreatedEvent)
			return ok && created.Product.ID == "p1" && created.EventName() == product.ProductCreatedEventName
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProductCommand("p1", "Product 1", decimal.NewFromInt(10))

	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateProductCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "ProductRepository")
}

func TestCreateProductCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateProductCommand("p1", "Product 1", decimal.NewFromInt(10))

	repo := new(MockProductRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrNotificationFailed)
}
