package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers, including the link summary
// and bulk unlink operations the order lifecycle depends on.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_UnlinkedDelivery_RoundTrips() {
	ctx := context.Background()
	original := suite.createTestDelivery(nil)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Nil(retrieved.OrderID())
	suite.Equal(original.SupplierID(), retrieved.SupplierID())
	suite.Equal(original.StoreID(), retrieved.StoreID())
	suite.True(original.ScheduledDate().Equal(retrieved.ScheduledDate()))
	suite.True(original.Quantity().IsEqual(retrieved.Quantity()))
	suite.Equal(original.Unit(), retrieved.Unit())
	suite.Equal(delivery.Planned, retrieved.Status())
	suite.Nil(retrieved.DeliveredDate())
	suite.False(retrieved.Reconciled())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_LinkedDelivery_KeepsOrderReference() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	original := suite.createTestDelivery(&orderID)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.OrderID())
	suite.True(orderID.IsEqual(*retrieved.OrderID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_ValidationRoundTrips() {
	ctx := context.Background()
	d := suite.createTestDelivery(nil)

	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	blNumber := "BL-2026-0042"
	blAmount, err := kernel.NewAmountFromString("99.90")
	suite.Require().NoError(err)
	deliveredAt := time.Date(2026, 4, 20, 14, 30, 0, 0, time.UTC)

	suite.Require().NoError(d.MarkDelivered(deliveredAt, &blNumber, &blAmount))
	reference := "INV-7781"
	invoiceAmount, err := kernel.NewAmountFromString("99.90")
	suite.Require().NoError(err)
	d.AttachInvoice(&reference, &invoiceAmount)
	d.MarkReconciled()

	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, retrieved.Status())
	suite.Require().NotNil(retrieved.DeliveredDate())
	suite.True(deliveredAt.Equal(*retrieved.DeliveredDate()))
	suite.Require().NotNil(retrieved.BLNumber())
	suite.Equal(blNumber, *retrieved.BLNumber())
	suite.Require().NotNil(retrieved.BLAmount())
	suite.True(blAmount.IsEqual(*retrieved.BLAmount()))
	suite.Require().NotNil(retrieved.InvoiceReference())
	suite.Equal(reference, *retrieved.InvoiceReference())
	suite.True(retrieved.Reconciled())
	suite.NotNil(retrieved.ValidatedAt())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_UnlinkPersistsNull() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	d := suite.createTestDelivery(&orderID)

	suite.tracker.On("TrackAggregate", d.ID(), d).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.AssignOrder(nil))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.OrderID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestLinkSummary_CountsLinkedAndDelivered() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	planned := suite.createTestDelivery(&orderID)
	delivered := suite.createTestDelivery(&orderID)
	suite.Require().NoError(delivered.MarkDelivered(time.Now().UTC(), nil, nil))
	unrelated := suite.createTestDelivery(&otherOrderID)

	for _, d := range []*delivery.Delivery{planned, delivered, unrelated} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	summary, err := suite.repository.LinkSummary(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), summary.Linked)
	suite.Equal(int64(1), summary.Delivered)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestLinkSummary_NoLinkedDeliveries_ReturnsZero() {
	ctx := context.Background()

	summary, err := suite.repository.LinkSummary(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), summary.Linked)
	suite.Equal(int64(0), summary.Delivered)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUnlinkAllFromOrder_ClearsEveryReference() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	first := suite.createTestDelivery(&orderID)
	second := suite.createTestDelivery(&orderID)
	unrelated := suite.createTestDelivery(&otherOrderID)

	for _, d := range []*delivery.Delivery{first, second, unrelated} {
		suite.tracker.On("TrackAggregate", d.ID(), d).Once()
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	suite.Require().NoError(suite.repository.UnlinkAllFromOrder(ctx, orderID))

	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		retrieved, err := suite.repository.Get(ctx, id)
		suite.Require().NoError(err)
		suite.Nil(retrieved.OrderID())
	}

	retrieved, err := suite.repository.Get(ctx, unrelated.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.OrderID())
	suite.True(otherOrderID.IsEqual(*retrieved.OrderID()))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestDelete_RemovesDelivery() {
	ctx := context.Background()
	d := suite.createTestDelivery(nil)

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))

	_, err := suite.repository.Get(ctx, d.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery(orderID *kernel.UUID) *delivery.Delivery {
	quantity, err := kernel.NewAmountFromString("25")
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		quantity, "crates", "",
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return d
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
