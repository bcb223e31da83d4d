package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// UpdateDeliveryCommandHandler handles partial updates of existing deliveries.
// When the order reference changes, both the old and the new order get their
// status recomputed inside the same transaction as the delivery write.
type UpdateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  OrderLifecycleManager
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery update operations.
func NewUpdateDeliveryCommandHandler(
	uowFactory UoWFactory,
	lifecycle OrderLifecycleManager,
) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle processes the delivery update command.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	changes := cmd.Changes()
	previousOrderID := aggregate.OrderID()
	orderRefChanged := changes.OrderIDSet && !sameOrderRef(previousOrderID, changes.OrderID)

	if orderRefChanged {
		if err = aggregate.AssignOrder(changes.OrderID); err != nil {
			return err
		}
	}

	if changes.ScheduledDate != nil {
		if err = aggregate.Reschedule(*changes.ScheduledDate); err != nil {
			return err
		}
	}

	if changes.Quantity != nil {
		unit := aggregate.Unit()
		if changes.Unit != nil {
			unit = *changes.Unit
		}
		if err = aggregate.ChangeQuantity(*changes.Quantity, unit); err != nil {
			return err
		}
	}

	if changes.Notes != nil {
		aggregate.ChangeNotes(*changes.Notes)
	}

	if changes.BLNumber != nil || changes.BLAmount != nil {
		if err = aggregate.AttachDeliveryNote(changes.BLNumber, changes.BLAmount); err != nil {
			return err
		}
	}

	if changes.InvoiceReference != nil || changes.InvoiceAmount != nil {
		aggregate.AttachInvoice(changes.InvoiceReference, changes.InvoiceAmount)
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if orderRefChanged {
		if previousOrderID != nil {
			if err = h.lifecycle.OnDeliveryUnlinked(ctx, uow, *previousOrderID); err != nil {
				return err
			}
		}
		if changes.OrderID != nil {
			if err = h.lifecycle.OnDeliveryLinked(ctx, uow, *changes.OrderID); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}

func sameOrderRef(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}
