package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler        commands.CreateCustomerCommandHandler
	changeCustomerAddressHandler commands.ChangeCustomerAddressCommandHandler
	activateCustomerHandler      commands.ActivateCustomerCommandHandler
	createProductHandler         commands.CreateProductCommandHandler
	placeOrderHandler            commands.PlaceOrderCommandHandler
	updateOrderHandler           commands.UpdateOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getSalesSummaryHandler queries.GetSalesSummaryQueryHandler

	ids    kernel.IDGenerator
	logger *logger.Logger
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCustomer        commands.CreateCustomerCommandHandler
	ChangeCustomerAddress commands.ChangeCustomerAddressCommandHandler
	ActivateCustomer      commands.ActivateCustomerCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	PlaceOrder            commands.PlaceOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler

	GetOrder        queries.GetOrderQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetSalesSummary queries.GetSalesSummaryQueryHandler
}

func NewServer(handlers Handlers, ids kernel.IDGenerator, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		createCustomerHandler:        handlers.CreateCustomer,
		changeCustomerAddressHandler: handlers.ChangeCustomerAddress,
		activateCustomerHandler:      handlers.ActivateCustomer,
		createProductHandler:         handlers.CreateProduct,
		placeOrderHandler:            handlers.PlaceOrder,
		updateOrderHandler:           handlers.UpdateOrder,
		getOrderHandler:              handlers.GetOrder,
		listOrdersHandler:            handlers.ListOrders,
		getSalesSummaryHandler:       handlers.GetSalesSummary,
		ids:                          ids,
		logger:                       log.With("component", "http_server"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateCustomerCommand(s.ids.NewID(), body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); s.failed(err) {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.CustomerID()})
}

// ChangeCustomerAddress handles PUT /api/v1/customers/{customerId}/address.
func (s *Server) ChangeCustomerAddress(ctx echo.Context, customerID servers.CustomerId) error {
	var body servers.ChangeCustomerAddressJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewChangeCustomerAddressCommand(customerID, body.Street, body.Number, body.Zip, body.City)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.changeCustomerAddressHandler.Handle(ctx.Request().Context(), cmd); s.failed(err) {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActivateCustomer handles POST /api/v1/customers/{customerId}/activate.
func (s *Server) ActivateCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	cmd, err := commands.NewActivateCustomerCommand(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.activateCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("price", err))
	}

	cmd, err := commands.NewCreateProductCommand(s.ids.NewID(), body.Name, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); s.failed(err) {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.ProductID()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	customerID := ""
	if params.CustomerId != nil {
		customerID = *params.CustomerId
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(customerID))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewPlaceOrderCommand(body.CustomerId, toOrderLines(body.Items))
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID})
}

// GetSalesSummary handles GET /api/v1/orders/summary.
func (s *Server) GetSalesSummary(ctx echo.Context) error {
	summary, err := s.getSalesSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetSalesSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SalesSummary{
		OrderCount: summary.OrderCount,
		Total:      money(summary.Total),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	customerID := ""
	if body.CustomerId != nil {
		customerID = *body.CustomerId
	}
	var lines []commands.OrderLine
	if body.Items != nil {
		lines = toOrderLines(*body.Items)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, customerID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// failed reports whether err should fail the request. Event handler errors
// raised after commit are logged and the request still succeeds.
func (s *Server) failed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, commands.ErrNotificationFailed) {
		s.logger.Warn("event notification failed after commit", "error", err)
		return false
	}
	return true
}

func toOrderLines(items []servers.OrderLine) []commands.OrderLine {
	lines := make([]commands.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, commands.OrderLine{ProductID: item.ProductId, Quantity: item.Quantity})
	}
	return lines
}

func toOrderResponse(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, servers.OrderItem{
			Id:        item.ID,
			ProductId: item.ProductID,
			Name:      item.Name,
			Price:     money(item.Price),
			Quantity:  item.Quantity,
			Total:     money(item.Total),
		})
	}
	return servers.Order{
		Id:         view.ID,
		CustomerId: view.CustomerID,
		Items:      items,
		Total:      money(view.Total),
	}
}

func money(d decimal.Decimal) servers.Money {
	return d.StringFixed(2)
}
