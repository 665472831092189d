// Package queries contains read-only operations of the ordering service.
// Handlers return plain view structs and never modify state.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Find(ctx context.Context, id string) (*order.Order, error)
	FindAll(ctx context.Context) ([]*order.Order, error)
}

// OrderView is the read model of an order.
type OrderView struct {
	ID         string
	CustomerID string
	Items      []OrderItemView
	Total      decimal.Decimal
}

type OrderItemView struct {
	ID        string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

func newOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      make([]OrderItemView, 0, len(items)),
		Total:      o.Total(),
	}
	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Total:     item.Total(),
		})
	}
	return view
}
