package commands

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
)

// DevalidateDeliveryCommandHandler handles delivery devalidation. Only the
// reconciled flag is cleared; status stays delivered, so the linked order's
// status does not move and no lifecycle recomputation is triggered.
type DevalidateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewDevalidateDeliveryCommandHandler creates a handler for delivery devalidation operations.
func NewDevalidateDeliveryCommandHandler(uowFactory UoWFactory) DevalidateDeliveryCommandHandler {
	return DevalidateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery devalidation command and returns the updated
// delivery.
func (h *DevalidateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd DevalidateDeliveryCommand,
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

	aggregate.Devalidate()

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
