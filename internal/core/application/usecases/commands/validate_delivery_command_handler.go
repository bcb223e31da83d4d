package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/delivery"
)

// ValidateDeliveryCommandHandler handles delivery validation. The status
// change and the linked order's recomputation happen in one transaction, so a
// crash between the two can never leave a delivered delivery under a planned
// order.
type ValidateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  OrderLifecycleManager
	now        func() time.Time
}

// NewValidateDeliveryCommandHandler creates a handler for delivery validation operations.
func NewValidateDeliveryCommandHandler(
	uowFactory UoWFactory,
	lifecycle OrderLifecycleManager,
) ValidateDeliveryCommandHandler {
	return ValidateDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		now:        time.Now,
	}
}

// Handle processes the delivery validation command and returns the updated
// delivery.
func (h *ValidateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ValidateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkDelivered(h.now(), cmd.BLNumber(), cmd.BLAmount()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		if err = h.lifecycle.OnDeliveryValidated(ctx, uow, *orderID); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
