package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	logger  *logger.Logger
}

// aggregateTracker records aggregates written through the repository.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// tracker may be nil. A nil logger discards the causes of failed updates.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, log *logger.Logger) *GormOrderRepository {
	if log == nil {
		log = logger.NewNop()
	}
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		logger:  log.With("component", "order_repository"),
	}
}

// Create inserts the header and then the items in one transaction. Items are
// plain INSERTs, so an item id already stored fails the whole create.
// Storage errors are returned as is.
func (r *GormOrderRepository) Create(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&dto.Items).Error
	})
	if err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update replaces the stored order with the in-memory aggregate:
// delete items, update header, insert items. All three steps share one
// transaction; when r.db already is a transaction a savepoint scopes them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return fmt.Errorf("delete items: %w", err)
		}

		result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"customer_id": dto.CustomerID,
			"total":       dto.Total,
		})
		if result.Error != nil {
			return fmt.Errorf("update header: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("update header: %w", gorm.ErrRecordNotFound)
		}

		if err := tx.Omit(clause.Associations).Create(&dto.Items).Error; err != nil {
			return fmt.Errorf("insert items: %w", err)
		}

		return nil
	})
	if err != nil {
		r.logger.Error("order update rolled back", "orderId", dto.ID, "error", err)
		return ports.ErrOrderUpdateFailed
	}

	r.track(aggregate)
	return nil
}

// Find retrieves an order and its items.
func (r *GormOrderRepository) Find(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAll retrieves every order with its items.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
