package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// DeliveryChanges carries the optional fields of a delivery update. A nil
// field means "no change". OrderID has three states and needs the explicit
// OrderIDSet flag: absent (no change), set to a value (relink), set to nil
// (unlink).
type DeliveryChanges struct {
	OrderIDSet bool
	OrderID    *kernel.UUID

	ScheduledDate    *time.Time
	Quantity         *kernel.Amount
	Unit             *string
	Notes            *string
	BLNumber         *string
	BLAmount         *kernel.Amount
	InvoiceReference *string
	InvoiceAmount    *kernel.Amount
}

// UpdateDeliveryCommand represents a partial update of an existing delivery.
// Status, reconciled, deliveredDate and validatedAt are never updated here:
// they belong to validation, devalidation and reconciliation.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	changes    DeliveryChanges

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to apply partial changes to a delivery.
func NewUpdateDeliveryCommand(deliveryID kernel.UUID, changes DeliveryChanges) (UpdateDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryCommand{}, err
	}
	if changes.OrderIDSet && changes.OrderID != nil {
		if err := changes.OrderID.Validate(); err != nil {
			return UpdateDeliveryCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
	}
	if changes.ScheduledDate != nil && changes.ScheduledDate.IsZero() {
		return UpdateDeliveryCommand{}, errs.NewValueIsRequiredError("scheduledDate")
	}

	return UpdateDeliveryCommand{
		deliveryID: deliveryID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Changes returns the partial field changes.
func (c UpdateDeliveryCommand) Changes() DeliveryChanges {
	return c.changes
}
