package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrValidateDeliveryCommandIsNotConstructed = errors.New(
	"ValidateDeliveryCommand must be created via NewValidateDeliveryCommand constructor",
)

// ValidateDeliveryCommand represents the delivery-note entry step: the goods
// physically arrived and the operator records the accompanying document.
// Both document fields are optional, but an amount without its number is
// rejected by the aggregate.
type ValidateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	blNumber   *string
	blAmount   *kernel.Amount

	guard guard.ConstructorGuard
}

// NewValidateDeliveryCommand creates a command to validate a delivery.
func NewValidateDeliveryCommand(
	deliveryID kernel.UUID,
	blNumber *string,
	blAmount *kernel.Amount,
) (ValidateDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return ValidateDeliveryCommand{}, err
	}

	return ValidateDeliveryCommand{
		deliveryID: deliveryID,
		blNumber:   blNumber,
		blAmount:   blAmount,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrValidateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to validate.
func (c ValidateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// BLNumber returns the delivery-note number, if provided.
func (c ValidateDeliveryCommand) BLNumber() *string {
	return c.blNumber
}

// BLAmount returns the delivery-note amount, if provided.
func (c ValidateDeliveryCommand) BLAmount() *kernel.Amount {
	return c.blAmount
}
