package commands

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles delivery creation. When the new
// delivery references an order, the order's status is recomputed inside the
// same transaction that persists the delivery.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  OrderLifecycleManager
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	lifecycle OrderLifecycleManager,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle processes the delivery creation command.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.OrderID(), cmd.SupplierID(), cmd.StoreID(),
		cmd.ScheduledDate(), cmd.Quantity(), cmd.Unit(), cmd.Notes(), cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if orderID := aggregate.OrderID(); orderID != nil {
		if err = h.lifecycle.OnDeliveryLinked(ctx, uow, *orderID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
