// Package productrepo maps the Product entity to the products table.
package productrepo

import (
	"ordering/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row layout of the products table.
type ProductDTO struct {
	ID    string          `gorm:"type:varchar(64);primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price)
}
