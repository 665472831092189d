package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordering/cmd"
	"ordering/internal/adapters/out/persistence/persistencetest"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	root *cmd.CompositionRoot
	e    *echo.Echo
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	db := persistencetest.NewSQLiteDB(s.T())
	cfg := cmd.Config{ProductEmailRecipient: "catalog@example.com"}
	s.root = cmd.NewCompositionRoot(cfg, db, logger.NewNop())

	e, err := s.root.CreateWebServer()
	s.Require().NoError(err)
	s.e = e
}

func (s *RouterTestSuite) TearDownTest() {
	s.root.Close()
}

func (s *RouterTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *RouterTestSuite) created(method, path, body string) string {
	rec := s.do(method, path, body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Created](s.T(), rec).Id
}

// seedOrder creates an active customer, a product priced 10.00 and an order
// of two units of it.
func (s *RouterTestSuite) seedOrder() (customerID, productID, orderID string) {
	customerID = s.created(http.MethodPost, "/api/v1/customers", `{"name":"Ana"}`)

	rec := s.do(http.MethodPut, "/api/v1/customers/"+customerID+"/address",
		`{"street":"Main St","number":10,"zip":"12345","city":"Springfield"}`)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/customers/"+customerID+"/activate", "")
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	productID = s.created(http.MethodPost, "/api/v1/products", `{"name":"Book","price":"10.00"}`)

	orderID = s.created(http.MethodPost, "/api/v1/orders",
		`{"customerId":"`+customerID+`","items":[{"productId":"`+productID+`","quantity":2}]}`)

	return customerID, productID, orderID
}

func (s *RouterTestSuite) Test_PlacedOrderCanBeRead() {
	customerID, productID, orderID := s.seedOrder()

	rec := s.do(http.MethodGet, "/api/v1/orders/"+orderID, "")

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	order := decode[servers.Order](s.T(), rec)
	s.Equal(orderID, order.Id)
	s.Equal(customerID, order.CustomerId)
	s.Equal("20.00", order.Total)
	s.Require().Len(order.Items, 1)
	s.Equal(productID, order.Items[0].ProductId)
	s.Equal("Book", order.Items[0].Name)
	s.Equal("10.00", order.Items[0].Price)
	s.Equal(2, order.Items[0].Quantity)
	s.Equal("20.00", order.Items[0].Total)
}

func (s *RouterTestSuite) Test_ListAndSummary() {
	customerID, _, orderID := s.seedOrder()
	other := s.created(http.MethodPost, "/api/v1/customers", `{"name":"Bo"}`)

	rec := s.do(http.MethodGet, "/api/v1/orders?customerId="+customerID, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	orders := decode[[]servers.Order](s.T(), rec)
	s.Require().Len(orders, 1)
	s.Equal(orderID, orders[0].Id)

	rec = s.do(http.MethodGet, "/api/v1/orders?customerId="+other, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]servers.Order](s.T(), rec))

	rec = s.do(http.MethodGet, "/api/v1/orders/summary", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	summary := decode[servers.SalesSummary](s.T(), rec)
	s.Equal(1, summary.OrderCount)
	s.Equal("20.00", summary.Total)
}

func (s *RouterTestSuite) Test_UpdateOrderAppendsItemsAndReassignsCustomer() {
	_, productID, orderID := s.seedOrder()
	other := s.created(http.MethodPost, "/api/v1/customers", `{"name":"Bo"}`)

	rec := s.do(http.MethodPatch, "/api/v1/orders/"+orderID,
		`{"customerId":"`+other+`","items":[{"productId":"`+productID+`","quantity":1}]}`)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	order := decode[servers.Order](s.T(), s.do(http.MethodGet, "/api/v1/orders/"+orderID, ""))
	s.Equal(other, order.CustomerId)
	s.Equal("30.00", order.Total)
	s.Len(order.Items, 2)
}

func (s *RouterTestSuite) Test_UpdateOrderWithUnknownCustomerConflicts() {
	customerID, _, orderID := s.seedOrder()

	rec := s.do(http.MethodPatch, "/api/v1/orders/"+orderID, `{"customerId":"missing"}`)

	s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	s.Equal("error updating order", decode[servers.Error](s.T(), rec).Message)

	order := decode[servers.Order](s.T(), s.do(http.MethodGet, "/api/v1/orders/"+orderID, ""))
	s.Equal(customerID, order.CustomerId, "the failed update is rolled back")
	s.Equal("20.00", order.Total)
}

func (s *RouterTestSuite) Test_NotFound() {
	rec := s.do(http.MethodGet, "/api/v1/orders/missing", "")
	s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/orders",
		`{"customerId":"missing","items":[{"productId":"p","quantity":1}]}`)
	s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/unknown", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(http.StatusNotFound, decode[servers.Error](s.T(), rec).Code)
}

func (s *RouterTestSuite) Test_RequestValidation() {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"price is not money", http.MethodPost, "/api/v1/products", `{"name":"Book","price":"ten"}`},
		{"missing name", http.MethodPost, "/api/v1/customers", `{}`},
		{"zero quantity", http.MethodPost, "/api/v1/orders", `{"customerId":"c","items":[{"productId":"p","quantity":0}]}`},
		{"no items", http.MethodPost, "/api/v1/orders", `{"customerId":"c","items":[]}`},
		{"address number", http.MethodPut, "/api/v1/customers/c/address", `{"street":"s","number":0,"zip":"z","city":"c"}`},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(tc.method, tc.path, tc.body)
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			s.Equal(http.StatusBadRequest, decode[servers.Error](s.T(), rec).Code)
		})
	}
}

func (s *RouterTestSuite) Test_EmptyPatchIsRejected() {
	_, _, orderID := s.seedOrder()

	rec := s.do(http.MethodPatch, "/api/v1/orders/"+orderID, `{}`)

	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) Test_HealthAndSwagger() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())

	rec = s.do(http.MethodGet, "/swagger/doc.json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Ordering API")
}

func TestStatusMapping_InternalErrorsAreNotLeaked(t *testing.T) {
	db := persistencetest.NewSQLiteDB(t)
	root := cmd.NewCompositionRoot(cmd.Config{}, db, logger.NewNop())
	e, err := root.CreateWebServer()
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decode[servers.Error](t, rec).Message)
}
