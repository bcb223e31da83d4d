package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetPendingReconciliationsQueryIsNotConstructed = errors.New(
	"GetPendingReconciliationsQuery must be created via NewGetPendingReconciliationsQuery constructor",
)

// GetPendingReconciliationsQuery retrieves delivered deliveries that carry an
// invoice reference but are not reconciled yet. The retry job feeds these
// back into batch verification.
type GetPendingReconciliationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingReconciliationsQuery creates a query for unreconciled
// delivered deliveries.
func NewGetPendingReconciliationsQuery() GetPendingReconciliationsQuery {
	return GetPendingReconciliationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingReconciliationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingReconciliationsQueryIsNotConstructed)
}

// GetPendingReconciliationsQueryResponse identifies one delivery awaiting
// reconciliation.
type GetPendingReconciliationsQueryResponse struct {
	DeliveryID       kernel.UUID
	StoreID          kernel.UUID
	InvoiceReference string
}
