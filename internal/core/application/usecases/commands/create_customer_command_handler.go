package commands

import (
	"context"

	"ordering/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler stores a new customer. The customer records
// CustomerCreatedEvent, published on commit.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the customer. A failing event handler yields
// ErrNotificationFailed after the customer has been committed.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Create(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
