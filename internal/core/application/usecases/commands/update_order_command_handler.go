package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// UpdateOrderCommandHandler applies an UpdateOrderCommand through
// OrderRepository.Update, which rewrites the stored order atomically.
// Storage failures surface as ports.ErrOrderUpdateFailed.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        kernel.IDGenerator
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, ids kernel.IDGenerator) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Find(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.CustomerID() != "" {
		if err = o.UpdateCustomer(cmd.CustomerID()); err != nil {
			return err
		}
	}

	items, err := buildItems(ctx, uow.ProductRepository(), h.ids, cmd.Lines())
	if err != nil {
		return err
	}
	for _, item := range items {
		if err = o.AddOrderItem(item); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
