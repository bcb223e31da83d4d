package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	linkedOrder := testOrder(t)
	orderID := linkedOrder.ID()
	aggregate := testDelivery(t, &orderID)

	blNumber := "BL-2026-0042"
	blAmount := testAmount(t, 120.50)
	cmd, err := commands.NewValidateDeliveryCommand(aggregate.ID(), &blNumber, &blAmount)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(linkedOrder, nil).Once()
	deliveryRepo.On("LinkSummary", mock.Anything, orderID).
		Return(services.DeliverySummary{Linked: 1, Delivered: 1}, nil).Once()
	orderRepo.On("Update", mock.Anything, linkedOrder).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidateDeliveryCommandHandler(factory, commands.NewOrderLifecycleManager())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Delivered, updated.Status())
	require.NotNil(t, updated.DeliveredDate())
	require.NotNil(t, updated.ValidatedAt())
	require.Equal(t, "BL-2026-0042", *updated.BLNumber())
	require.True(t, updated.BLAmount().IsEqual(blAmount))
	require.False(t, updated.Reconciled())
	orderRepo.AssertExpectations(t)
}

func TestValidateDeliveryCommandHandler_Handle_BLAmountWithoutNumber(t *testing.T) {
	ctx := t.Context()
	aggregate := testDelivery(t, nil)

	blAmount := testAmount(t, 55)
	cmd, err := commands.NewValidateDeliveryCommand(aggregate.ID(), nil, &blAmount)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidateDeliveryCommandHandler(factory, commands.NewOrderLifecycleManager())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, delivery.ErrBLAmountWithoutNumber)
	require.Equal(t, delivery.Planned, aggregate.Status())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestValidateDeliveryCommandHandler_Handle_UnlinkedSkipsRecompute(t *testing.T) {
	ctx := t.Context()
	aggregate := testDelivery(t, nil)

	blNumber := "BL-77"
	cmd, err := commands.NewValidateDeliveryCommand(aggregate.ID(), &blNumber, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidateDeliveryCommandHandler(factory, commands.NewOrderLifecycleManager())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Delivered, updated.Status())
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestDevalidateDeliveryCommandHandler_Handle_ClearsReconciledOnly(t *testing.T) {
	ctx := t.Context()
	aggregate := testDelivery(t, nil)
	blNumber := "BL-2026-0099"
	blAmount := testAmount(t, 310)
	require.NoError(t, aggregate.MarkDelivered(
		aggregate.ScheduledDate(), &blNumber, &blAmount,
	))
	aggregate.MarkReconciled()

	cmd, err := commands.NewDevalidateDeliveryCommand(aggregate.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDevalidateDeliveryCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, updated.Reconciled())
	require.Equal(t, delivery.Delivered, updated.Status())
	require.Equal(t, "BL-2026-0099", *updated.BLNumber())
	require.True(t, updated.BLAmount().IsEqual(blAmount))
}
