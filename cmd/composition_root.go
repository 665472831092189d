package cmd

import (
	"strings"
	"time"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/notifier"
	"ordering/internal/adapters/out/persistence"
	"ordering/internal/adapters/out/persistence/orderrepo"
	"ordering/internal/core/application/eventhandlers"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/events"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"
	"ordering/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// CompositionRoot owns the long lived collaborators of the process and builds
// handlers on demand.
type CompositionRoot struct {
	cfg          Config
	gormDB       *gorm.DB
	logger       *logger.Logger
	uowFactory   *persistence.GormUnitOfWorkFactory
	dispatcher   *events.Dispatcher
	ids          kernel.IDGenerator
	orderService services.OrderService
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *logger.Logger) *CompositionRoot {
	if log == nil {
		log = logger.NewNop()
	}
	ids := kernel.NewUUIDGenerator()
	dispatcher := events.NewDispatcher()

	root := &CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		logger:       log,
		uowFactory:   persistence.NewGormUnitOfWorkFactory(gormDB, dispatcher, log),
		dispatcher:   dispatcher,
		ids:          ids,
		orderService: services.NewOrderService(ids),
	}
	root.registerEventHandlers()

	return root
}

const slowQueryThreshold = time.Second

// OpenDatabase connects to the configured database and migrates the schema.
// SQL logging goes through log.
func OpenDatabase(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := persistence.Open(cfg.Database(), NewGormLogger(cfg, log))
	if err != nil {
		return nil, err
	}
	if err = persistence.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// NewGormLogger adapts the application logger for gorm. Every statement is
// logged in dev mode, only slow queries and errors otherwise.
func NewGormLogger(cfg Config, log *logger.Logger) gormLogger.Interface {
	if log == nil {
		log = logger.NewNop()
	}
	level := gormLogger.Warn
	if strings.EqualFold(cfg.LogMode, "dev") {
		level = gormLogger.Info
	}

	return gormLogger.New(log.With("component", "gorm"), gormLogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func (c *CompositionRoot) registerEventHandlers() {
	n := notifier.NewLogNotifier(c.logger)

	c.dispatcher.Register(customer.CustomerCreatedEventName, eventhandlers.NewLogWhenCustomerIsCreatedHandler(c.logger))
	c.dispatcher.Register(customer.CustomerCreatedEventName, eventhandlers.NewNotifyWhenCustomerIsCreatedHandler(n))
	c.dispatcher.Register(customer.CustomerAddressChangedEventName, eventhandlers.NewNotifyWhenCustomerAddressChangedHandler(n))
	c.dispatcher.Register(product.ProductCreatedEventName,
		eventhandlers.NewSendEmailWhenProductIsCreatedHandler(n, c.cfg.ProductEmailRecipient))
}

// Dispatcher exposes the process wide event dispatcher.
func (c *CompositionRoot) Dispatcher() *events.Dispatcher {
	return c.dispatcher
}

// Close releases the event handlers.
func (c *CompositionRoot) Close() {
	c.dispatcher.UnregisterAll()
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCustomerAddressCommandHandler() commands.ChangeCustomerAddressCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCustomerAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateActivateCustomerCommandHandler() commands.ActivateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.orderService, c.ids)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.ids)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetSalesSummaryQueryHandler() queries.GetSalesSummaryQueryHandler {
	return queries.NewGetSalesSummaryQueryHandler(c.orderReader(), c.orderService)
}

func (c *CompositionRoot) orderReader() queries.OrderReader {
	return orderrepo.NewGormOrderRepository(c.gormDB, nil, c.logger)
}

// CreateWebServer builds the echo instance serving the HTTP API.
func (c *CompositionRoot) CreateWebServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
		ChangeCustomerAddress: c.CreateChangeCustomerAddressCommandHandler(),
		ActivateCustomer:      c.CreateActivateCustomerCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		UpdateOrder:           c.CreateUpdateOrderCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetSalesSummary:       c.CreateGetSalesSummaryQueryHandler(),
	}, c.ids, c.logger)

	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	summaryHandler := c.CreateGetSalesSummaryQueryHandler()
	return jobs.NewJobManager(c.logger,
		jobs.NewSalesSummaryJob(summaryHandler, c.cfg.SalesSummarySchedule, c.logger),
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
