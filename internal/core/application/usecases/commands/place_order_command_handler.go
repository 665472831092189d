package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
)

// PlaceOrderCommandHandler turns a PlaceOrderCommand into a stored order and
// credits the customer's reward points in the same transaction.
type PlaceOrderCommandHandler struct {
	uowFactory   UoWFactory
	orderService services.OrderService
	ids          kernel.IDGenerator
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	orderService services.OrderService,
	ids kernel.IDGenerator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
		ids:          ids,
	}
}

// Handle returns the id of the new order.
// Unknown customers or products yield errs.ErrObjectNotFound.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Find(ctx, cmd.CustomerID())
	if err != nil {
		return "", err
	}

	items, err := buildItems(ctx, uow.ProductRepository(), h.ids, cmd.Lines())
	if err != nil {
		return "", err
	}

	o, err := h.orderService.PlaceOrder(c, items)
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Create(ctx, o); err != nil {
		return "", err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return o.ID(), nil
}
