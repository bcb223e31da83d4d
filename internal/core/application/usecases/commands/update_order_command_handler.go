package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles partial updates of existing orders.
// Absent fields stay untouched, including quantity: a numeric field never
// collapses to zero just because the caller omitted it.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changes := cmd.Changes()

	if changes.PlannedDate != nil {
		if err = aggregate.Reschedule(*changes.PlannedDate); err != nil {
			return err
		}
	}

	if changes.Quantity != nil {
		unit := ""
		if changes.Unit != nil {
			unit = *changes.Unit
		} else if aggregate.Unit() != nil {
			unit = *aggregate.Unit()
		}
		if err = aggregate.SetQuantity(*changes.Quantity, unit); err != nil {
			return err
		}
	}

	if changes.Notes != nil {
		aggregate.ChangeNotes(*changes.Notes)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
