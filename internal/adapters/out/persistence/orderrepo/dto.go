// Package orderrepo maps the Order aggregate to the orders and order_items tables.
// The header row and its item rows are always written and read together.
package orderrepo

import (
	"ordering/internal/adapters/out/persistence/customerrepo"
	"ordering/internal/adapters/out/persistence/productrepo"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the header row of an order.
// Total is a cache of the item totals and is recomputed on every write.
type OrderDTO struct {
	ID         string                    `gorm:"type:varchar(64);primaryKey"`
	CustomerID string                    `gorm:"type:varchar(64);not null;index"`
	Customer   *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Total      decimal.Decimal           `gorm:"type:numeric(12,2);not null"`
	Items      []OrderItemDTO            `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one dependent row of an order, linked by OrderID.
type OrderItemDTO struct {
	ID        string                  `gorm:"type:varchar(64);primaryKey"`
	OrderID   string                  `gorm:"type:varchar(64);not null;index"`
	ProductID string                  `gorm:"type:varchar(64);not null;index"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
	Name      string                  `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	Quantity  int                     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts the aggregate into a header with its item rows in aggregate order.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dtoItems := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtoItems = append(dtoItems, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   aggregate.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Total:      aggregate.Total(),
		Items:      dtoItems,
	}
}

// toDomain rebuilds the aggregate through its constructors, so a row set that
// violates an invariant fails here instead of producing an invalid Order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewOrderItem(itemDTO.ID, itemDTO.Name, itemDTO.Price, itemDTO.ProductID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(dto.ID, dto.CustomerID, items)
}
