package queries

import (
	"context"
)

// GetOrderQueryHandler returns errs.ErrObjectNotFound for unknown ids.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Find(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(o), nil
}
