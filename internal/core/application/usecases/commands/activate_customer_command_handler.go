package commands

import (
	"context"
)

// ActivateCustomerCommandHandler flips a stored customer to active.
// Customers without an address fail with customer.ErrAddressIsRequired.
type ActivateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewActivateCustomerCommandHandler(uowFactory CustomerUoWFactory) ActivateCustomerCommandHandler {
	return ActivateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *ActivateCustomerCommandHandler) Handle(ctx context.Context, cmd ActivateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Find(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.Activate(); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
