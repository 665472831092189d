package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrIDIsRequired           = errs.NewValueIsRequiredError("id")
	ErrCustomerIDIsRequired   = errs.NewValueIsRequiredError("customerId")
	ErrItemsAreRequired       = errs.NewValueIsRequiredError("items")
	ErrQuantityMustBePositive = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("quantity must be greater than 0"),
	)
)

// Order is the aggregate root of a customer purchase.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Must reference a customer
//   - Must contain at least one item, each with a positive quantity
//   - Can only be created through NewOrder
//
// Items keep their insertion order; it does not affect the total but is
// the order in which items are persisted.
type Order struct {
	// id is the unique identifier for the order
	id string

	// customerID references the buyer; existence is enforced by storage
	customerID string

	// items are owned exclusively by this order
	items []OrderItem

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order and validates it.
//
// Rules are checked in this order and the first violation is returned:
// ErrIDIsRequired, ErrCustomerIDIsRequired, ErrItemsAreRequired, ErrQuantityMustBePositive.
// The items slice is copied, so later changes to the caller's slice do not leak in.
//
// Example:
//
//	item, _ := order.NewOrderItem("i1", "Item 1", decimal.NewFromInt(10), "p1", 2)
//	o, err := order.NewOrder("o1", "c1", []order.OrderItem{item})
//	if err != nil {
//	    // handle validation error
//	}
//	o.Total() // 20
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
		guard:      guard.NewConstructorGuard(),
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks that the order was built by NewOrder and that every invariant holds.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}

	if strings.TrimSpace(o.id) == "" {
		return ErrIDIsRequired
	}
	if strings.TrimSpace(o.customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	if len(o.items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range o.items {
		if item.Quantity() <= 0 {
			return fmt.Errorf("item %q: %w", item.ID(), ErrQuantityMustBePositive)
		}
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// Total sums price × quantity over the current items. It is recomputed on every call.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// UpdateCustomer reassigns the order to another customer.
// Only emptiness is checked here; the customer's existence is enforced by storage.
func (o *Order) UpdateCustomer(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

// AddOrderItem appends an item. A non-positive quantity is rejected before the order changes.
func (o *Order) AddOrderItem(item OrderItem) error {
	if item.Quantity() <= 0 {
		return fmt.Errorf("item %q: %w", item.ID(), ErrQuantityMustBePositive)
	}
	o.items = append(o.items, item)
	return nil
}
