package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("orderId")
	ErrNothingToUpdate   = errs.NewValueIsInvalidErrorWithCause(
		"order", errors.New("either customerId or items must be given"),
	)
)

// UpdateOrderCommand reassigns an order to another customer, appends lines,
// or both. An empty customerID keeps the current customer.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID, customerID string, lines []OrderLine) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChanges(customerID, lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID is empty when the customer stays unchanged.
func (c UpdateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c UpdateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *UpdateOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setChanges(customerID string, lines []OrderLine) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" && len(lines) == 0 {
		return ErrNothingToUpdate
	}
	if err := validateLines(lines); err != nil {
		return err
	}

	c.customerID = customerID
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
