package queries

import (
	"context"
	"errors"

	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
	"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
)

// GetSalesSummaryQuery aggregates all stored orders.
type GetSalesSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSalesSummaryQuery() GetSalesSummaryQuery {
	return GetSalesSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

type SalesSummary struct {
	OrderCount int
	Total      decimal.Decimal
}

type GetSalesSummaryQueryHandler struct {
	orders       OrderReader
	orderService services.OrderService
}

func NewGetSalesSummaryQueryHandler(orders OrderReader, orderService services.OrderService) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{orders: orders, orderService: orderService}
}

func (h GetSalesSummaryQueryHandler) Handle(ctx context.Context, query GetSalesSummaryQuery) (SalesSummary, error) {
	if err := query.Validate(); err != nil {
		return SalesSummary{}, err
	}

	all, err := h.orders.FindAll(ctx)
	if err != nil {
		return SalesSummary{}, err
	}

	return SalesSummary{
		OrderCount: len(all),
		Total:      h.orderService.Total(all),
	}, nil
}
