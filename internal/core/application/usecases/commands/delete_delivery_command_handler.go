package commands

import (
	"context"
)

// DeleteDeliveryCommandHandler handles delivery deletion. A linked order gets
// its status recomputed in the same transaction, so deleting the last
// delivered delivery reverts the order correctly.
type DeleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  OrderLifecycleManager
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery deletion operations.
func NewDeleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	lifecycle OrderLifecycleManager,
) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle processes the delivery deletion command.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		if err = h.lifecycle.OnDeliveryUnlinked(ctx, uow, *orderID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
