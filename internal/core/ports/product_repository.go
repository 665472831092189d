package ports

import (
	"context"

	"ordering/internal/core/domain/model/product"
)

// ProductRepository persists the product catalogue.
type ProductRepository interface {
	Create(ctx context.Context, aggregate *product.Product) error

	// Find returns errs.ErrObjectNotFound when no product has the id.
	Find(ctx context.Context, id string) (*product.Product, error)

	FindAll(ctx context.Context) ([]*product.Product, error)
}
