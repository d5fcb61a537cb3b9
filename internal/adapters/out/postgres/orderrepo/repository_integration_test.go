package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/adapters/out/postgres/orderrepo"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError maps the unique violation onto gorm.ErrDuplicatedKey,
	// which the repository relies on to report identifier conflicts.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflictError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	duplicate, err := order.NewOrder(testOrder.ID(), suite.testCustomer(), suite.testItems(),
		decimal.NewFromInt(300), "", time.Time{})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrderWithScreenshot()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.Equal(testOrder.Customer(), restored.Customer())
	suite.Require().Len(restored.Items(), len(testOrder.Items()))
	for i, item := range testOrder.Items() {
		suite.Equal(item.Product(), restored.Items()[i].Product())
		suite.Equal(item.Flavor(), restored.Items()[i].Flavor())
		suite.Equal(item.Quantity(), restored.Items()[i].Quantity())
		suite.True(item.Price().Equal(restored.Items()[i].Price()))
	}
	suite.True(testOrder.TotalAmount().Equal(restored.TotalAmount()))
	suite.Equal(testOrder.PaymentScreenshot(), restored.PaymentScreenshot())
	suite.Equal(order.PaymentPendingVerification, restored.PaymentStatus())
	suite.Equal(order.StatusPending, restored.Status())
	suite.WithinDuration(testOrder.CreatedAt(), restored.CreatedAt(), time.Second)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewOrderID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	ctx := context.Background()

	testCases := []struct {
		name            string
		transition      func(*order.Order) error
		expectedStatus  order.Status
		expectedPayment order.PaymentStatus
	}{
		{
			name:            "accept moves pending to confirmed and verifies payment",
			transition:      func(o *order.Order) error { return o.Accept() },
			expectedStatus:  order.StatusConfirmed,
			expectedPayment: order.PaymentVerified,
		},
		{
			name:            "reject moves pending to cancelled and fails payment",
			transition:      func(o *order.Order) error { return o.Reject() },
			expectedStatus:  order.StatusCancelled,
			expectedPayment: order.PaymentFailed,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

			testOrder := suite.createTestOrderWithScreenshot()
			suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
			suite.Require().NoError(suite.repository.Add(ctx, testOrder))

			prior := testOrder.Status()
			suite.Require().NoError(tc.transition(testOrder))
			suite.Require().NoError(suite.repository.Update(ctx, testOrder, prior))

			restored, err := suite.repository.Get(ctx, testOrder.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.expectedStatus, restored.Status())
			suite.Equal(tc.expectedPayment, restored.PaymentStatus())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatus_ReturnsConflictError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First caller wins the pending-to-confirmed race.
	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.StatusPending))

	// Second caller loaded the order while it was still pending.
	loser, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Equal(order.StatusConfirmed, loser.Status())

	err = suite.repository.Update(ctx, loser, order.StatusPending)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// The stored record keeps the winner's state.
	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, stored.Status())
	suite.Equal(order.PaymentVerified, stored.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createTestOrder()
	suite.Require().NoError(missing.Accept())

	err := suite.repository.Update(ctx, missing, order.StatusPending)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle() {
	ctx := context.Background()

	testOrder := suite.createTestOrderWithScreenshot()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.StatusPending))

	suite.Require().NoError(testOrder.MarkDelivered())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder, order.StatusConfirmed))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDelivered, restored.Status())
	suite.Equal(order.PaymentVerified, restored.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) testCustomer() order.Customer {
	customer, err := order.NewCustomer(
		"Asha Rao", "asha@example.com", "9876543210", "", "12 MG Road, Bengaluru", "560001")
	suite.Require().NoError(err)
	return customer
}

func (suite *OrderRepositoryIntegrationTestSuite) testItems() []order.Item {
	item1, err := order.NewItem("Vanilla Tub", "Classic", 2, decimal.NewFromInt(150))
	suite.Require().NoError(err)
	item2, err := order.NewItem("Kulfi Stick", "Kesar Pista", 3, decimal.RequireFromString("49.50"))
	suite.Require().NoError(err)
	return []order.Item{item1, item2}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewOrderID(), suite.testCustomer(), suite.testItems(),
		decimal.RequireFromString("448.50"), "", time.Time{})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithScreenshot() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewOrderID(), suite.testCustomer(), suite.testItems(),
		decimal.RequireFromString("448.50"), "aGVsbG8gd29ybGQ=", time.Time{})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
