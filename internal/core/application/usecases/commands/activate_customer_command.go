package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/guard"
)

var ErrActivateCustomerCommandIsNotConstructed = errors.New(
	"ActivateCustomerCommand must be created via NewActivateCustomerCommand constructor",
)

// ActivateCustomerCommand activates a customer that already has an address.
type ActivateCustomerCommand struct {
	customerID string

	guard guard.ConstructorGuard
}

func NewActivateCustomerCommand(customerID string) (ActivateCustomerCommand, error) {
	if strings.TrimSpace(customerID) == "" {
		return ActivateCustomerCommand{}, ErrCustomerIDIsRequired
	}

	return ActivateCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ActivateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrActivateCustomerCommandIsNotConstructed)
}

func (c ActivateCustomerCommand) CustomerID() string {
	return c.customerID
}
