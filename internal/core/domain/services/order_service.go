package services

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var rewardDivisor = decimal.NewFromInt(2)

// OrderService coordinates the Order and Customer aggregates.
type OrderService struct {
	ids kernel.IDGenerator
}

func NewOrderService(ids kernel.IDGenerator) OrderService {
	return OrderService{ids: ids}
}

// PlaceOrder builds a new order for the customer and credits the customer with
// reward points worth half of the order total, rounded down.
// The customer is left untouched when the order cannot be built.
func (s OrderService) PlaceOrder(c *customer.Customer, items []order.OrderItem) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, order.ErrItemsAreRequired
	}

	o, err := order.NewOrder(s.ids.NewID(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	if err = c.AddRewardPoints(RewardPointsFor(o)); err != nil {
		return nil, err
	}

	return o, nil
}

// Total sums the totals of all orders.
func (s OrderService) Total(orders []*order.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total())
	}
	return total
}

// RewardPointsFor returns floor(total / 2).
func RewardPointsFor(o *order.Order) int {
	return int(o.Total().Div(rewardDivisor).Floor().IntPart())
}
