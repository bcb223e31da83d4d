// Package queries contains read-only operations returning view models.
// Query handlers bypass the domain model and read the database directly,
// keeping the read side independent from aggregate loading.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for a set of stores. The store list arrives
// pre-filtered by the access-control collaborator at the boundary; the query
// never evaluates visibility itself.
type GetOrdersQuery struct {
	visibleStoreIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query scoped to the given stores.
func NewGetOrdersQuery(visibleStoreIDs []kernel.UUID) (GetOrdersQuery, error) {
	if len(visibleStoreIDs) == 0 {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("visibleStoreIds")
	}
	for _, id := range visibleStoreIDs {
		if err := id.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("visibleStoreIds", err)
		}
	}

	return GetOrdersQuery{
		visibleStoreIDs: visibleStoreIDs,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// VisibleStoreIDs returns the stores the query is scoped to.
func (q GetOrdersQuery) VisibleStoreIDs() []kernel.UUID {
	return q.visibleStoreIDs
}

// GetOrdersQueryResponse is the read model for one order row.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	SupplierID  kernel.UUID
	StoreID     kernel.UUID
	PlannedDate time.Time
	Quantity    *kernel.Amount
	Unit        *string
	Status      string
	Notes       string
}
