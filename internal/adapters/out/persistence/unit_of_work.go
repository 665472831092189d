// Package persistence provides the GORM storage adapter of the ordering service:
// database opening, schema migration and the Unit of Work that binds the
// customer, product and order repositories to one transaction.
//
// Basic transaction management:
//
//	factory := persistence.NewGormUnitOfWorkFactory(db, dispatcher, log)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Create(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CustomerRepository().Update(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories report every aggregate they write to the unit of work. After a
// successful Commit the domain events recorded by those aggregates are handed
// to the EventPublisher; a rollback discards them.
//
// Each UnitOfWork instance owns at most one transaction; goroutines must use
// separate instances.
package persistence

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/persistence/customerrepo"
	"ordering/internal/adapters/out/persistence/orderrepo"
	"ordering/internal/adapters/out/persistence/productrepo"
	"ordering/internal/core/domain/events"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/logger"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *logger.Logger
}

// NewGormUnitOfWorkFactory creates the factory. With a nil publisher recorded
// domain events are dropped on commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, log *logger.Logger) *GormUnitOfWorkFactory {
	if log == nil {
		log = logger.NewNop()
	}
	return &GormUnitOfWorkFactory{db: db, publisher: publisher, logger: log}
}

// Create produces a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across repositories.
// Repositories obtained before Begin, or after Commit/Rollback, run on the
// plain connection pool.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *logger.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the active transaction and then publishes the domain events
// of every tracked aggregate. Returns gorm.ErrInvalidTransaction when there is
// no transaction. Handler failures come back joined with
// ports.ErrNotificationFailed; the data is committed regardless.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.discardTracked()
		return err
	}

	return uow.publishTracked(ctx)
}

// Rollback discards the active transaction together with the pending events.
// Returns gorm.ErrInvalidTransaction when there is none, which makes
// "defer uow.Rollback(ctx)" after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.discardTracked()
	return err
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow, uow.logger)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// pendingEvents drains the recorded events of all tracked aggregates in
// tracking order. An aggregate tracked twice contributes its events once.
func (uow *GormUnitOfWork) pendingEvents() []events.Event {
	var pending []events.Event
	for _, tracked := range uow.trackedAggregates {
		root, ok := tracked.Aggregate.(events.AggregateRoot)
		if !ok {
			continue
		}
		pending = append(pending, root.DomainEvents()...)
		root.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return pending
}

func (uow *GormUnitOfWork) discardTracked() {
	_ = uow.pendingEvents()
}

// publishTracked hands every pending event to the publisher. One failing
// event does not stop the others.
func (uow *GormUnitOfWork) publishTracked(ctx context.Context) error {
	pending := uow.pendingEvents()
	if uow.publisher == nil {
		return nil
	}

	var failures []error
	for _, event := range pending {
		if err := uow.publisher.Notify(ctx, event); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return errors.Join(append([]error{ports.ErrNotificationFailed}, failures...)...)
	}
	return nil
}
