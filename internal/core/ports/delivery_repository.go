package ports

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
)

// DeliveryRepository defines the persistence contract for delivery aggregates,
// including the composite queries the order lifecycle recomputation needs.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Nullable fields are written as-is, so unlinking (orderID = nil)
	// round-trips correctly.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes the delivery row.
	Delete(ctx context.Context, id kernel.UUID) error

	// LinkSummary counts the deliveries currently referencing the order and
	// how many of those are delivered. Lifecycle recomputation calls this
	// inside the same transaction that writes the derived order status, which
	// is what makes the read-modify-write atomic per order.
	LinkSummary(ctx context.Context, orderID kernel.UUID) (services.DeliverySummary, error)

	// UnlinkAllFromOrder clears orderID on every delivery referencing the
	// order. Used by order deletion, which unlinks rather than cascades.
	UnlinkAllFromOrder(ctx context.Context, orderID kernel.UUID) error
}
