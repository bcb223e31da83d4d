package queries_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDeliveriesQueryHandler
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))

	suite.handler = queries.NewGetDeliveriesQueryHandler(db)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{kernel.NewUUID()}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByVisibleStores() {
	visibleStore := kernel.NewUUID()
	hiddenStore := kernel.NewUUID()

	kept := suite.saveDelivery(visibleStore, nil)
	suite.saveDelivery(hiddenStore, nil)

	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{visibleStore}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(kept.ID(), result[0].ID)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_FiltersByOrder() {
	storeID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	linked := suite.saveDelivery(storeID, &orderID)
	suite.saveDelivery(storeID, &otherOrderID)
	suite.saveDelivery(storeID, nil)

	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{storeID}, &orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(linked.ID(), result[0].ID)
	suite.Require().NotNil(result[0].OrderID)
	suite.True(orderID.IsEqual(*result[0].OrderID))
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_MapsValidatedDelivery() {
	storeID := kernel.NewUUID()
	d := suite.saveDelivery(storeID, nil)

	blNumber := "BL-9001"
	blAmount, err := kernel.NewAmountFromString("240.00")
	suite.Require().NoError(err)
	deliveredAt := time.Date(2026, 5, 12, 16, 0, 0, 0, time.UTC)
	suite.Require().NoError(d.MarkDelivered(deliveredAt, &blNumber, &blAmount))

	reference := "INV-9001"
	invoiceAmount, err := kernel.NewAmountFromString("240.00")
	suite.Require().NoError(err)
	d.AttachInvoice(&reference, &invoiceAmount)
	d.MarkReconciled()

	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), d))

	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{storeID}, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.Equal("delivered", row.Status)
	suite.Require().NotNil(row.DeliveredDate)
	suite.True(deliveredAt.Equal(*row.DeliveredDate))
	suite.Require().NotNil(row.BLNumber)
	suite.Equal(blNumber, *row.BLNumber)
	suite.Require().NotNil(row.BLAmount)
	suite.True(blAmount.IsEqual(*row.BLAmount))
	suite.Require().NotNil(row.InvoiceReference)
	suite.Equal(reference, *row.InvoiceReference)
	suite.True(row.Reconciled)
	suite.NotNil(row.ValidatedAt)
}

func (suite *GetDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetDeliveriesQuery constructor")
}

func (suite *GetDeliveriesQueryHandlerTestSuite) saveDelivery(
	storeID kernel.UUID,
	orderID *kernel.UUID,
) *delivery.Delivery {
	quantity, err := kernel.NewAmountFromString("18")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), storeID,
		time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
		quantity, "boxes", "",
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
	return d
}

func TestGetDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveriesQueryHandlerTestSuite))
}
