package customer

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/events"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	ErrIDIsRequired             = errs.NewValueIsRequiredError("id")
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrAddressIsRequired        = errs.NewValueIsRequiredErrorWithCause(
		"address", errors.New("address is mandatory to activate a customer"),
	)
)

// Customer is the buyer of orders. Reward points accumulate as orders are placed.
// Creation and address changes are recorded as domain events.
type Customer struct {
	events.EventRecorder

	id           string
	name         string
	address      *Address
	rewardPoints int
	active       bool

	guard guard.ConstructorGuard
}

// NewCustomer creates an inactive customer without address and reward points
// and raises CustomerCreatedEvent.
func NewCustomer(id, name string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.RaiseDomainEvent(NewCustomerCreatedEvent(c))
	return c, nil
}

// RestoreCustomer rebuilds a customer from persisted state without raising events.
// The same rules as in NewCustomer apply, plus an active customer must have an address.
func RestoreCustomer(id, name string, address *Address, rewardPoints int, active bool) (*Customer, error) {
	c, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}

	if address != nil {
		if err = c.ChangeAddress(*address); err != nil {
			return nil, err
		}
	}
	if err = c.AddRewardPoints(rewardPoints); err != nil {
		return nil, err
	}
	if active {
		if err = c.Activate(); err != nil {
			return nil, err
		}
	}

	c.ClearDomainEvents()
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() string {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Address returns a copy of the customer's address, or nil when none was set.
func (c *Customer) Address() *Address {
	if c.address == nil {
		return nil
	}
	a := *c.address
	return &a
}

func (c *Customer) RewardPoints() int {
	return c.rewardPoints
}

func (c *Customer) IsActive() bool {
	return c.active
}

func (c *Customer) ChangeName(name string) error {
	return c.setName(name)
}

// ChangeAddress replaces the address and raises CustomerAddressChangedEvent.
// The address must come from NewAddress.
func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = &address
	c.RaiseDomainEvent(NewCustomerAddressChangedEvent(c))
	return nil
}

// AddRewardPoints increases the balance. Negative amounts are rejected.
func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rewardPoints", fmt.Errorf("%d is negative", points))
	}
	c.rewardPoints += points
	return nil
}

func (c *Customer) Activate() error {
	if c.address == nil {
		return ErrAddressIsRequired
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

// Snapshot copies the customer's current state.
func (c *Customer) Snapshot() Snapshot {
	return Snapshot{
		ID:           c.id,
		Name:         c.name,
		Address:      c.Address(),
		RewardPoints: c.rewardPoints,
		Active:       c.active,
	}
}

func (c *Customer) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// Snapshot is a detached copy of a Customer used as event payload.
type Snapshot struct {
	ID           string
	Name         string
	Address      *Address
	RewardPoints int
	Active       bool
}
