// Package ports defines the contracts between the ordering core and its adapters.
// These interfaces establish dependency inversion: the core declares what it needs,
// adapters under internal/adapters provide it.
package ports

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
)

// ErrOrderUpdateFailed is the only error OrderRepository.Update returns for storage
// failures. The underlying cause is deliberately not exposed.
var ErrOrderUpdateFailed = errors.New("error updating order")

// OrderRepository persists the Order aggregate together with its items.
type OrderRepository interface {
	// Create stores a new order header with all of its items in one insert.
	// Storage errors (for example an unknown customer) are returned as they are.
	Create(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored items and header of an existing order inside one
	// transaction: delete items, update header, insert current items.
	// Any failure rolls everything back and returns ErrOrderUpdateFailed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Find loads an order with its items.
	// A missing order yields an error matching errs.ErrObjectNotFound.
	Find(ctx context.Context, id string) (*order.Order, error)

	// FindAll loads every order with its items, in no particular order.
	FindAll(ctx context.Context) ([]*order.Order, error)
}
