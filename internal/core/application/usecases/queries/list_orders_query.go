package queries

import (
	"context"
	"errors"
	"sort"

	"ordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery returns every order, optionally only those of one customer.
type ListOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty customerID to list all orders.
func NewListOrdersQuery(customerID string) ListOrdersQuery {
	return ListOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) CustomerID() string {
	return q.customerID
}

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns the orders sorted by id for stable output.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(all))
	for _, o := range all {
		if query.CustomerID() != "" && o.CustomerID() != query.CustomerID() {
			continue
		}
		views = append(views, newOrderView(o))
	}

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views, nil
}
