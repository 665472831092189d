package orderrepo_test

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/persistence"
	"ordering/internal/adapters/out/persistence/customerrepo"
	"ordering/internal/adapters/out/persistence/orderrepo"
	"ordering/internal/adapters/out/persistence/productrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// orderRepositoryCases holds the behaviour every backing database must show.
// Concrete suites embed it and provide db through their setup hooks.
type orderRepositoryCases struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	customers  *customerrepo.GormCustomerRepository
	products   *productrepo.GormProductRepository
}

func (s *orderRepositoryCases) useDB(db *gorm.DB) {
	s.db = db
	s.repository = orderrepo.NewGormOrderRepository(db, nil, nil)
	s.customers = customerrepo.NewGormCustomerRepository(db, nil)
	s.products = productrepo.NewGormProductRepository(db, nil)
}

func (s *orderRepositoryCases) TestCreate_PersistsHeaderAndItems() {
	ctx := context.Background()
	s.seed(ctx)
	o := s.newOrder("o1", "c1", s.newItem("i1", "p1", 2), s.newItem("i2", "p2", 1))

	s.Require().NoError(s.repository.Create(ctx, o))

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("o1", found.ID())
	s.Equal("c1", found.CustomerID())
	s.ElementsMatch([]string{"i1", "i2"}, itemIDs(found))
	s.True(decimal.NewFromInt(40).Equal(found.Total()), found.Total().String())
	s.Equal(2, s.countItems("o1"))
	s.True(decimal.NewFromInt(40).Equal(s.storedTotal("o1")))
}

func (s *orderRepositoryCases) TestCreate_UnknownCustomer_PropagatesStorageError() {
	ctx := context.Background()
	s.seed(ctx)
	o := s.newOrder("o1", "missing", s.newItem("i1", "p1", 1))

	err := s.repository.Create(ctx, o)

	s.Require().Error(err)
	s.NotErrorIs(err, ports.ErrOrderUpdateFailed)
	s.NotErrorIs(err, errs.ErrObjectNotFound)
	s.Equal(0, s.countOrders())
	s.Equal(0, s.countItems("o1"))
}

func (s *orderRepositoryCases) TestCreate_DuplicateItemID_LeavesExistingOrderIntact() {
	ctx := context.Background()
	s.seed(ctx)
	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o1", "c1", s.newItem("i1", "p1", 2))))

	err := s.repository.Create(ctx, s.newOrder("o2", "c2", s.newItem("i1", "p3", 7)))
	s.Require().Error(err)

	s.Equal(1, s.countOrders())
	s.Equal(0, s.countItems("o2"))
	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c1", found.CustomerID())
	s.Equal([]string{"i1"}, itemIDs(found))
	s.Equal("p1", found.Items()[0].ProductID())
	s.Equal(2, found.Items()[0].Quantity())
	s.True(decimal.NewFromInt(20).Equal(found.Total()), found.Total().String())
}

func (s *orderRepositoryCases) TestCreate_RejectsUnconstructedOrder() {
	err := s.repository.Create(context.Background(), &order.Order{})

	s.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (s *orderRepositoryCases) TestUpdate_ReplacesItemsAndCustomer() {
	ctx := context.Background()
	s.seed(ctx)
	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))))

	updated := s.newOrder("o1", "c2", s.newItem("i2", "p2", 3), s.newItem("i3", "p3", 1))
	s.Require().NoError(s.repository.Update(ctx, updated))

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c2", found.CustomerID())
	s.ElementsMatch([]string{"i2", "i3"}, itemIDs(found))
	s.Equal(2, s.countItems("o1"))
	s.True(updated.Total().Equal(found.Total()))
	s.True(updated.Total().Equal(s.storedTotal("o1")))
}

func (s *orderRepositoryCases) TestUpdate_AppendedItemIsPersisted() {
	ctx := context.Background()
	s.seed(ctx)
	o := s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))
	s.Require().NoError(s.repository.Create(ctx, o))

	s.Require().NoError(o.AddOrderItem(s.newItem("i2", "p2", 2)))
	s.Require().NoError(s.repository.Update(ctx, o))

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"i1", "i2"}, itemIDs(found))
	s.True(decimal.NewFromInt(50).Equal(found.Total()), found.Total().String())
}

func (s *orderRepositoryCases) TestUpdate_UnknownCustomer_RollsBackEverything() {
	ctx := context.Background()
	s.seed(ctx)
	original := s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))
	s.Require().NoError(s.repository.Create(ctx, original))

	broken := s.newOrder("o1", "missing", s.newItem("i2", "p2", 5), s.newItem("i3", "p3", 5))
	err := s.repository.Update(ctx, broken)

	s.Require().ErrorIs(err, ports.ErrOrderUpdateFailed)
	s.Equal(ports.ErrOrderUpdateFailed.Error(), err.Error())

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c1", found.CustomerID())
	s.Equal([]string{"i1"}, itemIDs(found))
	s.True(original.Total().Equal(s.storedTotal("o1")))
}

func (s *orderRepositoryCases) TestUpdate_FailureInsideUnitOfWork_OuterRollbackRestoresState() {
	ctx := context.Background()
	s.seed(ctx)
	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))))

	uow := persistence.NewGormUnitOfWorkFactory(s.db, nil, nil).Create()
	s.Require().NoError(uow.Begin(ctx))

	c1, err := uow.CustomerRepository().Find(ctx, "c1")
	s.Require().NoError(err)
	s.Require().NoError(c1.AddRewardPoints(7))
	s.Require().NoError(uow.CustomerRepository().Update(ctx, c1))

	broken := s.newOrder("o1", "missing", s.newItem("i2", "p2", 3))
	s.Require().ErrorIs(uow.OrderRepository().Update(ctx, broken), ports.ErrOrderUpdateFailed)

	inTx, err := uow.OrderRepository().Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c1", inTx.CustomerID())
	s.Equal([]string{"i1"}, itemIDs(inTx))

	s.Require().NoError(uow.Rollback(ctx))

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c1", found.CustomerID())
	s.Equal([]string{"i1"}, itemIDs(found))
	s.True(decimal.NewFromInt(10).Equal(s.storedTotal("o1")))
	s.Equal(1, s.countItems("o1"))

	storedCustomer, err := s.customers.Find(ctx, "c1")
	s.Require().NoError(err)
	s.Equal(0, storedCustomer.RewardPoints())
}

func (s *orderRepositoryCases) TestUpdate_UnknownProduct_RollsBackEverything() {
	ctx := context.Background()
	s.seed(ctx)
	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))))

	item, err := order.NewOrderItem("i2", "Ghost", decimal.NewFromInt(1), "missing", 1)
	s.Require().NoError(err)
	broken := s.newOrder("o1", "c2", item)

	s.Require().ErrorIs(s.repository.Update(ctx, broken), ports.ErrOrderUpdateFailed)

	found, err := s.repository.Find(ctx, "o1")
	s.Require().NoError(err)
	s.Equal("c1", found.CustomerID())
	s.Equal([]string{"i1"}, itemIDs(found))
}

func (s *orderRepositoryCases) TestUpdate_MissingOrder_Fails() {
	ctx := context.Background()
	s.seed(ctx)

	err := s.repository.Update(ctx, s.newOrder("ghost", "c1", s.newItem("i1", "p1", 1)))

	s.Require().ErrorIs(err, ports.ErrOrderUpdateFailed)
	s.Equal(0, s.countOrders())
	s.Equal(0, s.countItems("ghost"))
}

func (s *orderRepositoryCases) TestFind_NonExistentOrder_ReturnsNotFound() {
	o, err := s.repository.Find(context.Background(), "ghost")

	s.Nil(o)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.NotErrorIs(err, ports.ErrOrderUpdateFailed)
	s.False(errs.IsValidation(err))

	var notFound *errs.ObjectNotFoundError
	s.Require().True(errors.As(err, &notFound))
	s.Equal("ghost", notFound.ID)
}

func (s *orderRepositoryCases) TestFindAll_ReturnsEveryOrderWithItems() {
	ctx := context.Background()
	s.seed(ctx)

	empty, err := s.repository.FindAll(ctx)
	s.Require().NoError(err)
	s.Empty(empty)

	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o1", "c1", s.newItem("i1", "p1", 1))))
	s.Require().NoError(s.repository.Create(ctx, s.newOrder("o2", "c2", s.newItem("i2", "p2", 1), s.newItem("i3", "p3", 2))))

	all, err := s.repository.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)

	byID := make(map[string]*order.Order, len(all))
	for _, o := range all {
		byID[o.ID()] = o
	}
	s.Equal([]string{"i1"}, itemIDs(byID["o1"]))
	s.ElementsMatch([]string{"i2", "i3"}, itemIDs(byID["o2"]))
	s.Equal("c2", byID["o2"].CustomerID())
}

func (s *orderRepositoryCases) TestEndToEnd_CustomerProductOrder() {
	ctx := context.Background()

	c1, err := customer.NewCustomer("C1", "Customer 1")
	s.Require().NoError(err)
	a1, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	s.Require().NoError(err)
	s.Require().NoError(c1.ChangeAddress(a1))
	s.Require().NoError(c1.AddRewardPoints(10))
	s.Require().NoError(c1.Activate())
	s.Require().NoError(s.customers.Create(ctx, c1))

	p1, err := product.NewProduct("P1", "Product 1", decimal.NewFromInt(10))
	s.Require().NoError(err)
	s.Require().NoError(s.products.Create(ctx, p1))

	item, err := order.NewOrderItem("I1", p1.Name(), p1.Price(), p1.ID(), 2)
	s.Require().NoError(err)
	o1, err := order.NewOrder("O1", c1.ID(), []order.OrderItem{item})
	s.Require().NoError(err)
	s.Require().NoError(s.repository.Create(ctx, o1))

	found, err := s.repository.Find(ctx, o1.ID())
	s.Require().NoError(err)
	s.Equal("C1", found.CustomerID())
	s.True(decimal.NewFromInt(20).Equal(found.Total()), found.Total().String())

	storedCustomer, err := s.customers.Find(ctx, "C1")
	s.Require().NoError(err)
	s.True(storedCustomer.IsActive())
	s.Equal(10, storedCustomer.RewardPoints())
	s.Equal("Street 1, 1, Zipcode 1, City 1", storedCustomer.Address().String())
}

func (s *orderRepositoryCases) seed(ctx context.Context) {
	for _, id := range []string{"c1", "c2"} {
		c, err := customer.NewCustomer(id, "Customer "+id)
		s.Require().NoError(err)
		s.Require().NoError(s.customers.Create(ctx, c))
	}
	for i, id := range []string{"p1", "p2", "p3"} {
		p, err := product.NewProduct(id, "Product "+id, decimal.NewFromInt(int64(10*(i+1))))
		s.Require().NoError(err)
		s.Require().NoError(s.products.Create(ctx, p))
	}
}

// newItem prices the item like the seeded product: p1=10, p2=20, p3=30.
func (s *orderRepositoryCases) newItem(id, productID string, quantity int) order.OrderItem {
	prices := map[string]int64{"p1": 10, "p2": 20, "p3": 30}
	item, err := order.NewOrderItem(id, "Item "+id, decimal.NewFromInt(prices[productID]), productID, quantity)
	s.Require().NoError(err)
	return item
}

func (s *orderRepositoryCases) newOrder(id, customerID string, items ...order.OrderItem) *order.Order {
	o, err := order.NewOrder(id, customerID, items)
	s.Require().NoError(err)
	return o
}

func (s *orderRepositoryCases) countOrders() int {
	var n int64
	s.Require().NoError(s.db.Model(&orderrepo.OrderDTO{}).Count(&n).Error)
	return int(n)
}

func (s *orderRepositoryCases) countItems(orderID string) int {
	var n int64
	s.Require().NoError(s.db.Model(&orderrepo.OrderItemDTO{}).Where("order_id = ?", orderID).Count(&n).Error)
	return int(n)
}

func (s *orderRepositoryCases) storedTotal(orderID string) decimal.Decimal {
	var dto orderrepo.OrderDTO
	s.Require().NoError(s.db.First(&dto, "id = ?", orderID).Error)
	return dto.Total
}

func itemIDs(o *order.Order) []string {
	items := o.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID())
	}
	return ids
}
