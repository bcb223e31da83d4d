package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDevalidateDeliveryCommandIsNotConstructed = errors.New(
	"DevalidateDeliveryCommand must be created via NewDevalidateDeliveryCommand constructor",
)

// DevalidateDeliveryCommand represents the elevated-role correction step that
// reopens a delivery for reconciliation. The caller's role is checked at the
// boundary, not here.
type DevalidateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDevalidateDeliveryCommand creates a command to devalidate a delivery.
func NewDevalidateDeliveryCommand(deliveryID kernel.UUID) (DevalidateDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return DevalidateDeliveryCommand{}, err
	}

	return DevalidateDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DevalidateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDevalidateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to devalidate.
func (c DevalidateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
