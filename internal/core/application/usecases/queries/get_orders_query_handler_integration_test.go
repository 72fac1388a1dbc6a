package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"opsconsole/internal/adapters/out/postgres/orderrepo"
	"opsconsole/internal/core/application/usecases/queries"
	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"
	"opsconsole/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	listHandler    queries.GetOrdersQueryHandler
	detailHandler  queries.GetOrderQueryHandler
	orderRepo      *orderrepo.GormOrderRepository
	ownerID        kernel.UUID
	otherOwnerID   kernel.UUID
	sequenceNumber int
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	policy := services.NewAccessPolicy()
	suite.listHandler = queries.NewGetOrdersQueryHandler(db, policy)
	suite.detailHandler = queries.NewGetOrderQueryHandler(db, policy)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.ownerID = kernel.NewUUID()
	suite.otherOwnerID = kernel.NewUUID()
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetOrdersQueryHandlerTestSuite) ownerCaller() services.Caller {
	return services.Caller{ID: suite.ownerID, Role: user.RoleUser}
}

func (suite *GetOrdersQueryHandlerTestSuite) adminCaller() services.Caller {
	return services.Caller{ID: kernel.NewUUID(), Role: user.RoleAdmin}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Equal(int64(0), result.Total)
	suite.Equal(0, result.TotalPages)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_OwnerScoping() {
	ctx := context.Background()
	suite.seedOrder(suite.ownerID, order.Pending, 100, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Shipped, 250, time.Now().UTC())
	suite.seedOrder(suite.otherOwnerID, order.Pending, 75, time.Now().UTC())

	// Regular user sees only their own orders
	query, err := queries.NewGetOrdersQuery(
		suite.ownerCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(2), result.Total)

	// Admin sees everything
	adminQuery, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	adminResult, err := suite.listHandler.Handle(ctx, adminQuery)
	suite.Require().NoError(err)
	suite.Len(adminResult.Orders, 3)
	suite.Equal(int64(3), adminResult.Total)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilterMatchesCountAndRows() {
	ctx := context.Background()
	suite.seedOrder(suite.ownerID, order.Pending, 10, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Pending, 20, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Cancelled, 30, time.Now().UTC())

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Pending, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Len(result.Orders, 2)
	for _, row := range result.Orders {
		suite.Equal("pending", row.Status)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_PageBeyondEnd_KeepsAccurateMeta() {
	ctx := context.Background()
	for range 3 {
		suite.seedOrder(suite.ownerID, order.Pending, 10, time.Now().UTC())
	}

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 5, 2)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Equal(int64(3), result.Total)
	suite.Equal(2, result.TotalPages)
	suite.Equal(5, result.Page)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_SortByTotal() {
	ctx := context.Background()
	suite.seedOrder(suite.ownerID, order.Pending, 300, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Pending, 100, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Pending, 200, time.Now().UTC())

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByTotal, false, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 3)
	suite.Equal(100.0, result.Orders[0].Total)
	suite.Equal(200.0, result.Orders[1].Total)
	suite.Equal(300.0, result.Orders[2].Total)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_DateRangeFilterIsInclusive() {
	ctx := context.Background()
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	suite.seedOrder(suite.ownerID, order.Pending, 10, jan)
	suite.seedOrder(suite.ownerID, order.Pending, 20, feb)
	suite.seedOrder(suite.ownerID, order.Pending, 30, mar)

	from := feb
	to := mar

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", &from, &to,
		queries.OrderSortByCreatedAt, false, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Require().Len(result.Orders, 2)
	suite.Equal(20.0, result.Orders[0].Total)
	suite.Equal(30.0, result.Orders[1].Total)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_RowsCarryLineItems() {
	ctx := context.Background()
	suite.seedOrder(suite.ownerID, order.Pending, 120, time.Now().UTC())

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, "", nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	row := result.Orders[0]
	suite.Require().Len(row.Items, 1)
	suite.Equal(1, row.ItemCount)
	suite.Equal("Widget", row.Items[0].Name)
	suite.Equal(120.0, row.Items[0].UnitPrice)
	suite.Equal(120.0, row.Items[0].LineTotal)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_SearchByOrderNumberOrCustomer() {
	ctx := context.Background()
	seeded := suite.seedOrder(suite.ownerID, order.Pending, 10, time.Now().UTC())
	suite.seedOrder(suite.ownerID, order.Pending, 20, time.Now().UTC())

	query, err := queries.NewGetOrdersQuery(
		suite.adminCaller(), order.Unknown, seeded.OrderNumber(), nil, nil,
		queries.OrderSortByCreatedAt, true, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(seeded.OrderNumber(), result.Orders[0].OrderNumber)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestDetail_NonOwner_GetsForbiddenNotNotFound() {
	ctx := context.Background()
	seeded := suite.seedOrder(suite.otherOwnerID, order.Pending, 10, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(suite.ownerCaller(), seeded.ID())
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrAccessForbidden)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestDetail_MissingOrder_GetsNotFound() {
	query, err := queries.NewGetOrderQuery(
		suite.adminCaller(), kernel.NewTokenID(kernel.OrderPrefix))
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestDetail_Owner_SeesItemsAndTotals() {
	ctx := context.Background()
	seeded := suite.seedOrder(suite.ownerID, order.Processing, 150, time.Now().UTC())

	query, err := queries.NewGetOrderQuery(suite.ownerCaller(), seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.detailHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(seeded.ID().String(), result.ID)
	suite.Equal("processing", result.Status)
	suite.Len(result.Items, 1)
	suite.Equal(150.0, result.Total)
}

// seedOrder persists an order with a controlled status, total and creation time.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(
	ownerID kernel.UUID,
	status order.Status,
	total float64,
	createdAt time.Time,
) *order.Order {
	suite.sequenceNumber++

	customer, err := order.NewCustomer("Seed Customer", "seed@example.com", "+15550100")
	suite.Require().NoError(err)
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	suite.Require().NoError(err)
	item, err := order.NewItem("prod-1", "Widget", 1, total)
	suite.Require().NoError(err)

	seeded, err := order.RestoreOrder(
		kernel.NewTokenID(kernel.OrderPrefix),
		fmt.Sprintf("ORD-%d-%04d", createdAt.Year(), 1000+suite.sequenceNumber),
		ownerID,
		customer,
		address,
		address,
		[]order.Item{item},
		order.Totals{Subtotal: total, Tax: 0, Shipping: 0, Total: total},
		status,
		"",
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
