package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
)

// CustomerRepository persists customers including address, reward points and activation.
type CustomerRepository interface {
	Create(ctx context.Context, aggregate *customer.Customer) error

	// Update overwrites a stored customer. Unknown ids yield errs.ErrObjectNotFound.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Find returns errs.ErrObjectNotFound when no customer has the id.
	Find(ctx context.Context, id string) (*customer.Customer, error)

	FindAll(ctx context.Context) ([]*customer.Customer, error)
}
