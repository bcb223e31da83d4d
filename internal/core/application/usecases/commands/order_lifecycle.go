package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
)

// OrderLifecycleManager keeps Order.status synchronized with the set of
// deliveries referencing the order. Handlers call it inside their own open
// unit of work, after the delivery mutation has been written, so the
// count-and-update runs as one atomic read-modify-write per order.
//
// All three notifications deliberately share one implementation: the status is
// re-derived fresh from the full current link summary every time, never
// adjusted incrementally. Concurrent recomputations for different orders are
// independent and need no coordination.
type OrderLifecycleManager struct {
	policy services.OrderStatusPolicy
}

// NewOrderLifecycleManager creates a lifecycle manager with the default
// status derivation policy.
func NewOrderLifecycleManager() OrderLifecycleManager {
	return OrderLifecycleManager{policy: services.NewOrderStatusPolicy()}
}

// OnDeliveryLinked recomputes the order's status after a delivery started
// referencing it.
func (m OrderLifecycleManager) OnDeliveryLinked(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	return m.recompute(ctx, uow, orderID)
}

// OnDeliveryUnlinked recomputes the order's status after a delivery stopped
// referencing it (unlink or deletion).
func (m OrderLifecycleManager) OnDeliveryUnlinked(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	return m.recompute(ctx, uow, orderID)
}

// OnDeliveryValidated recomputes the order's status after a referencing
// delivery was validated.
func (m OrderLifecycleManager) OnDeliveryValidated(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	return m.recompute(ctx, uow, orderID)
}

func (m OrderLifecycleManager) recompute(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	summary, err := uow.DeliveryRepository().LinkSummary(ctx, orderID)
	if err != nil {
		return err
	}

	status := m.policy.Derive(summary)
	if status == aggregate.Status() {
		return nil
	}

	if err = aggregate.ApplyStatus(status); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}
