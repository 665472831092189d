package commands

import (
	"context"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var ErrLinesAreRequired = errs.NewValueIsRequiredError("items")

// OrderLine asks for quantity units of a catalogue product.
// Name and price are copied from the product when the order item is built.
type OrderLine struct {
	ProductID string
	Quantity  int
}

func validateLines(lines []OrderLine) error {
	for i, line := range lines {
		if strings.TrimSpace(line.ProductID) == "" {
			return fmt.Errorf("items[%d]: %w", i, ErrProductIDIsRequired)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("items[%d]: %w", i, order.ErrQuantityMustBePositive)
		}
	}
	return nil
}

// buildItems resolves every line against the product repository.
func buildItems(
	ctx context.Context,
	products ports.ProductRepository,
	ids kernel.IDGenerator,
	lines []OrderLine,
) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, err := products.Find(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewOrderItem(ids.NewID(), p.Name(), p.Price(), p.ID(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
