package commands

import (
	"context"
)

// ChangeCustomerAddressCommandHandler moves a customer to a new address. The
// customer records CustomerAddressChangedEvent, published on commit.
type ChangeCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewChangeCustomerAddressCommandHandler(uowFactory CustomerUoWFactory) ChangeCustomerAddressCommandHandler {
	return ChangeCustomerAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeCustomerAddressCommandHandler) Handle(ctx context.Context, cmd ChangeCustomerAddressCommand) error {
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

	if err = c.ChangeAddress(cmd.Address()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
