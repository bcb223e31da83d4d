package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderChanges carries the optional fields of an order update.
// A nil field means "no change"; numeric fields are never coerced to zero.
type OrderChanges struct {
	PlannedDate *time.Time
	Quantity    *kernel.Amount
	Unit        *string
	Notes       *string
}

// UpdateOrderCommand represents a partial update of an existing order.
// Status is never updated directly: it is owned by the lifecycle
// recomputation and derived from linked deliveries only.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	changes OrderChanges

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to apply partial changes to an order.
// A quantity change must carry a unit unless the order already has one.
func NewUpdateOrderCommand(orderID kernel.UUID, changes OrderChanges) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if changes.PlannedDate != nil && changes.PlannedDate.IsZero() {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("plannedDate")
	}

	return UpdateOrderCommand{
		orderID: orderID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the partial field changes.
func (c UpdateOrderCommand) Changes() OrderChanges {
	return c.changes
}
