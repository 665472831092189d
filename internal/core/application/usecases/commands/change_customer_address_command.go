package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/guard"
)

var ErrChangeCustomerAddressCommandIsNotConstructed = errors.New(
	"ChangeCustomerAddressCommand must be created via NewChangeCustomerAddressCommand constructor",
)

// ChangeCustomerAddressCommand replaces the address of an existing customer.
// The address is validated while the command is built.
type ChangeCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID string
	address    customer.Address

	guard guard.ConstructorGuard
}

func NewChangeCustomerAddressCommand(
	customerID string,
	street string,
	number int,
	zip string,
	city string,
) (ChangeCustomerAddressCommand, error) {
	cmd := ChangeCustomerAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	address, addressErr := customer.NewAddress(street, number, zip, city)
	if err := errors.Join(cmd.setCustomerID(customerID), addressErr); err != nil {
		return ChangeCustomerAddressCommand{}, err
	}
	cmd.address = address

	return cmd, nil
}

func (c ChangeCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerAddressCommandIsNotConstructed)
}

func (c ChangeCustomerAddressCommand) CustomerID() string {
	return c.customerID
}

func (c ChangeCustomerAddressCommand) Address() customer.Address {
	return c.address
}

func (c *ChangeCustomerAddressCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}
