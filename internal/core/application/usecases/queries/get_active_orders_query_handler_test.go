package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_WithOnlyTerminalOrders_ReturnsEmptySlice() {
	ctx := context.Background()
	suite.seedOrder(ctx, time.Now().UTC(), order.Fulfilled)
	suite.seedOrder(ctx, time.Now().UTC(), order.Cancelled)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_WithMixedStates_ReturnsOnlyActive() {
	ctx := context.Background()
	now := time.Now().UTC()

	submitted := suite.seedOrder(ctx, now, order.Submitted)
	paid := suite.seedOrder(ctx, now, order.Paid)
	fulfilled := suite.seedOrder(ctx, now, order.Fulfilled)
	cancelled := suite.seedOrder(ctx, now, order.Cancelled)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}

	suite.True(resultIDs[submitted.ID()], "Submitted order should be in results")
	suite.True(resultIDs[paid.ID()], "Paid order should be in results")
	suite.False(resultIDs[fulfilled.ID()], "Fulfilled order should not be in results")
	suite.False(resultIDs[cancelled.ID()], "Cancelled order should not be in results")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedByPlacementTime() {
	ctx := context.Background()
	base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	// Seed newest first to make the ordering observable
	newest := suite.seedOrder(ctx, base.Add(2*time.Hour), order.Submitted)
	middle := suite.seedOrder(ctx, base.Add(time.Hour), order.Paid)
	oldest := suite.seedOrder(ctx, base, order.Submitted)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(oldest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(newest.ID(), result[2].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx := context.Background()
	for range 20 {
		suite.seedOrder(ctx, time.Now().UTC(), order.Submitted)
	}

	query := queries.NewGetActiveOrdersQuery()

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel()

	result, err := suite.handler.Handle(cancelledCtx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedOrder(
	ctx context.Context, placedAt time.Time, state order.State,
) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), "sku-184", 1, 100, placedAt, state)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	return o
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
