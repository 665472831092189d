// Package product provides the Product entity sold through orders.
package product

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/events"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrIDIsRequired            = errs.NewValueIsRequiredError("id")
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
)

const ProductCreatedEventName = "ProductCreatedEvent"

// Product is a sellable item with a unit price.
type Product struct {
	events.EventRecorder

	id    string
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct creates a product and raises ProductCreatedEvent.
func NewProduct(id, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.RaiseDomainEvent(NewProductCreatedEvent(p))
	return p, nil
}

// RestoreProduct rebuilds a product from persisted state without raising events.
func RestoreProduct(id, name string, price decimal.Decimal) (*Product, error) {
	p, err := NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}
	p.ClearDomainEvents()
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

// Snapshot is a detached copy of a Product used as event payload.
type Snapshot struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// ProductCreatedEvent is raised once a new product has been stored.
type ProductCreatedEvent struct {
	events.BaseEvent
	Product Snapshot
}

func NewProductCreatedEvent(p *Product) ProductCreatedEvent {
	return ProductCreatedEvent{
		BaseEvent: events.NewBaseEvent(ProductCreatedEventName),
		Product: Snapshot{
			ID:    p.id,
			Name:  p.name,
			Price: p.price,
		},
	}
}
