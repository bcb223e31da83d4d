package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves deliveries for a set of stores, optionally
// narrowed to the ones referencing a single order.
type GetDeliveriesQuery struct {
	visibleStoreIDs []kernel.UUID
	orderID         *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query scoped to the given stores.
// orderID may be nil to list deliveries regardless of their order link.
func NewGetDeliveriesQuery(visibleStoreIDs []kernel.UUID, orderID *kernel.UUID) (GetDeliveriesQuery, error) {
	if len(visibleStoreIDs) == 0 {
		return GetDeliveriesQuery{}, errs.NewValueIsRequiredError("visibleStoreIds")
	}
	for _, id := range visibleStoreIDs {
		if err := id.Validate(); err != nil {
			return GetDeliveriesQuery{}, errs.NewValueIsInvalidErrorWithCause("visibleStoreIds", err)
		}
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetDeliveriesQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
	}

	return GetDeliveriesQuery{
		visibleStoreIDs: visibleStoreIDs,
		orderID:         orderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// VisibleStoreIDs returns the stores the query is scoped to.
func (q GetDeliveriesQuery) VisibleStoreIDs() []kernel.UUID {
	return q.visibleStoreIDs
}

// OrderID returns the optional order filter.
func (q GetDeliveriesQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetDeliveriesQueryResponse is the read model for one delivery row.
type GetDeliveriesQueryResponse struct {
	ID               kernel.UUID
	OrderID          *kernel.UUID
	SupplierID       kernel.UUID
	StoreID          kernel.UUID
	ScheduledDate    time.Time
	DeliveredDate    *time.Time
	Quantity         kernel.Amount
	Unit             string
	Status           string
	Notes            string
	BLNumber         *string
	BLAmount         *kernel.Amount
	InvoiceReference *string
	InvoiceAmount    *kernel.Amount
	Reconciled       bool
	ValidatedAt      *time.Time
}
