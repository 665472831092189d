package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerId")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
)

// CreateCustomerCommand registers a new, inactive customer without an address.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand(ids.NewID(), "John")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID string
	name       string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID, name string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() string {
	return c.customerID
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c *CreateCustomerCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
