package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/adapters/out/postgres/orderrepo"
	"github.com/Tilak2001/Anandicecream/internal/core/application/usecases/queries"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repository's tracker without recording anything.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ kernel.OrderID, _ any) {}

type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	getHandler  queries.GetOrderQueryHandler
	listHandler queries.GetAllOrdersQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopAggregateTracker{})
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_ExistingOrder_ReturnsReadModel() {
	ctx := context.Background()
	testOrder := suite.insertOrder("aGVsbG8=")

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID().String(), resp.OrderID)
	suite.Equal("Asha Rao", resp.CustomerName)
	suite.Equal("asha@example.com", resp.CustomerEmail)
	suite.Equal("9876543210", resp.CustomerPhone)
	suite.Equal("12 MG Road, Bengaluru", resp.DeliveryAddress)
	suite.Equal("560001", resp.Pincode)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("Vanilla Tub", resp.Items[0].Product)
	suite.Equal("Classic", resp.Items[0].Flavor)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.True(decimal.NewFromInt(150).Equal(resp.Items[0].Price))
	suite.True(decimal.RequireFromString("448.50").Equal(resp.TotalAmount))
	suite.True(resp.HasPaymentScreenshot)
	suite.Equal("pending_verification", resp.PaymentStatus)
	suite.Equal("pending", resp.Status)
	suite.False(resp.CreatedAt.IsZero())
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_WithoutScreenshot_ReportsNone() {
	ctx := context.Background()
	testOrder := suite.insertOrder("")

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(resp.HasPaymentScreenshot)
	suite.Equal("pending", resp.PaymentStatus)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_EmptyDatabase_ReturnsEmptySlice() {
	ctx := context.Background()

	result, err := suite.listHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_ReturnsMostRecentFirst() {
	ctx := context.Background()

	older := suite.insertOrder("")
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET created_at = created_at - interval '1 hour' WHERE order_id = ?",
		older.ID().String()).Error)
	newer := suite.insertOrder("")

	result, err := suite.listHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID().String(), result[0].OrderID)
	suite.Equal(older.ID().String(), result[1].OrderID)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_InvalidQuery_ReturnsError() {
	ctx := context.Background()

	result, err := suite.listHandler.Handle(ctx, queries.GetAllOrdersQuery{})
	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func (suite *OrderQueryHandlersTestSuite) insertOrder(screenshot string) *order.Order {
	customer, err := order.NewCustomer(
		"Asha Rao", "asha@example.com", "9876543210", "", "12 MG Road, Bengaluru", "560001")
	suite.Require().NoError(err)

	item1, err := order.NewItem("Vanilla Tub", "Classic", 2, decimal.NewFromInt(150))
	suite.Require().NoError(err)
	item2, err := order.NewItem("Kulfi Stick", "Kesar Pista", 3, decimal.RequireFromString("49.50"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewOrderID(), customer, []order.Item{item1, item2},
		decimal.RequireFromString("448.50"), screenshot, time.Time{})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
