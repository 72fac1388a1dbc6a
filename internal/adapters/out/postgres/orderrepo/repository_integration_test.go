package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"opsconsole/internal/adapters/out/postgres/orderrepo"
	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
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

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
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
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", first.ID().String(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Second order reuses the first one's number
	second := suite.createTestOrderWithNumber(first.OrderNumber())

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID().String(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal(originalOrder.OrderNumber(), retrievedOrder.OrderNumber())
	suite.True(originalOrder.OwnerID().IsEqual(retrievedOrder.OwnerID()))
	suite.Equal(originalOrder.Customer().Name(), retrievedOrder.Customer().Name())
	suite.Equal(originalOrder.ShippingAddress().City(), retrievedOrder.ShippingAddress().City())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Len(retrievedOrder.Items(), len(originalOrder.Items()))
	suite.InDelta(originalOrder.Totals().Total, retrievedOrder.Totals().Total, 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewTokenID(kernel.OrderPrefix)
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MatchingStatus_PersistsChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	observedStatus := testOrder.Status()
	suite.Require().NoError(testOrder.ChangeStatus(order.Processing))

	err := suite.repository.Update(ctx, testOrder, observedStatus)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusMovedConcurrently_ReturnsStateConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Another writer moves the row to a different status first
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", testOrder.ID().String()).
		Update("status", int(order.Cancelled)).Error)

	suite.Require().NoError(testOrder.ChangeStatus(order.Processing))

	err := suite.repository.Update(ctx, testOrder, order.Pending)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOrderStateConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder, order.Pending)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsByOrderNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err := suite.repository.ExistsByOrderNumber(ctx, testOrder.OrderNumber())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByOrderNumber(ctx, "ORD-1999-0000")
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeletePending_PendingOrder_RemovesOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.DeletePending(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.assertOrderCount(0)
	suite.assertItemCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeletePending_NonPendingOrder_ReturnsStateConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Row has already left the pending status
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", testOrder.ID().String()).
		Update("status", int(order.Shipped)).Error)

	err := suite.repository.DeletePending(ctx, testOrder.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOrderStateConflict)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeletePending_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.DeletePending(ctx, kernel.NewTokenID(kernel.OrderPrefix))
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending order with one line item and a fresh number.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderWithNumber(order.GenerateOrderNumber(time.Now()))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithNumber(number string) *order.Order {
	customer, err := order.NewCustomer("Jane Smith", "jane@example.com", "+15550100")
	suite.Require().NoError(err)

	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	suite.Require().NoError(err)

	item, err := order.NewItem("prod-49", "Mechanical Keyboard", 2, 89.99)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewTokenID(kernel.OrderPrefix),
		number,
		kernel.NewUUID(),
		customer,
		address,
		nil,
		[]order.Item{item},
		"leave at the door",
		order.DefaultPricingConfig(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
