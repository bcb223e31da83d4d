package services

import (
	"procurement/internal/core/domain/model/order"
)

// DeliverySummary is the current mix of deliveries referencing one order:
// how many are linked at all, and how many of those are delivered.
type DeliverySummary struct {
	Linked    int64
	Delivered int64
}

// OrderStatusPolicy is the domain service that derives an order's status from
// the deliveries currently referencing it.
//
// Derivation rules:
//   - zero linked deliveries -> Pending
//   - at least one linked delivery, none delivered -> Planned
//   - at least one linked delivery delivered -> Delivered
//
// The policy is evaluated fresh against the full current summary on every
// recomputation, never incrementally. That is what keeps a Delivered order
// from regressing to Planned when another, not-yet-delivered delivery is
// linked afterwards, and what lets an order revert all the way to Pending when
// its last delivery disappears.
type OrderStatusPolicy struct{}

// NewOrderStatusPolicy creates a new OrderStatusPolicy instance.
func NewOrderStatusPolicy() OrderStatusPolicy {
	return OrderStatusPolicy{}
}

// Derive returns the order status implied by the given delivery summary.
func (OrderStatusPolicy) Derive(summary DeliverySummary) order.Status {
	switch {
	case summary.Linked == 0:
		return order.Pending
	case summary.Delivered == 0:
		return order.Planned
	default:
		return order.Delivered
	}
}
