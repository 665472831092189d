package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
	ErrItemIDIsRequired          = errs.NewValueIsRequiredError("item id")
	ErrProductIDIsRequired       = errs.NewValueIsRequiredError("productId")
)

// OrderItem is one line of an order. It references a product by id
// and freezes the product's name and unit price at the time of purchase.
type OrderItem struct {
	id        string
	name      string
	price     decimal.Decimal
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line.
//
// Validation:
//   - id and productID must not be empty
//   - price must not be negative
//   - quantity must be greater than 0
func NewOrderItem(id, name string, price decimal.Decimal, productID string, quantity int) (OrderItem, error) {
	var violations []error
	if strings.TrimSpace(id) == "" {
		violations = append(violations, ErrItemIDIsRequired)
	}
	if strings.TrimSpace(productID) == "" {
		violations = append(violations, ErrProductIDIsRequired)
	}
	if price.IsNegative() {
		violations = append(violations,
			errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price)))
	}
	if quantity <= 0 {
		violations = append(violations, ErrQuantityMustBePositive)
	}
	if err := errors.Join(violations...); err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) ID() string {
	return i.id
}

func (i OrderItem) Name() string {
	return i.name
}

// Price is the unit price.
func (i OrderItem) Price() decimal.Decimal {
	return i.price
}

func (i OrderItem) ProductID() string {
	return i.productID
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

// Total is price × quantity.
func (i OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
