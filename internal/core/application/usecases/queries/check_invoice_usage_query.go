package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCheckInvoiceUsageQueryIsNotConstructed = errors.New(
	"CheckInvoiceUsageQuery must be created via NewCheckInvoiceUsageQuery constructor",
)

// CheckInvoiceUsageQuery looks for a reconciled delivery already bearing an
// invoice reference, excluding the delivery under edit. It is a read-only
// safeguard so the caller can warn about duplicate invoice use; it enforces
// nothing.
type CheckInvoiceUsageQuery struct {
	invoiceReference  string
	excludeDeliveryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInvoiceUsageQuery creates a usage check for the reference.
// excludeDeliveryID may be nil when no delivery is being edited.
func NewCheckInvoiceUsageQuery(
	invoiceReference string,
	excludeDeliveryID *kernel.UUID,
) (CheckInvoiceUsageQuery, error) {
	if invoiceReference == "" {
		return CheckInvoiceUsageQuery{}, errs.NewValueIsRequiredError("invoiceReference")
	}
	if excludeDeliveryID != nil {
		if err := excludeDeliveryID.Validate(); err != nil {
			return CheckInvoiceUsageQuery{}, errs.NewValueIsInvalidErrorWithCause("excludeDeliveryId", err)
		}
	}

	return CheckInvoiceUsageQuery{
		invoiceReference:  invoiceReference,
		excludeDeliveryID: excludeDeliveryID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckInvoiceUsageQuery) Validate() error {
	return q.guard.Validate(ErrCheckInvoiceUsageQueryIsNotConstructed)
}

// InvoiceReference returns the reference being checked.
func (q CheckInvoiceUsageQuery) InvoiceReference() string {
	return q.invoiceReference
}

// ExcludeDeliveryID returns the delivery to leave out of the scan.
func (q CheckInvoiceUsageQuery) ExcludeDeliveryID() *kernel.UUID {
	return q.excludeDeliveryID
}

// CheckInvoiceUsageQueryResponse identifies the delivery already using the
// reference. A nil response from the handler means the reference is unused.
type CheckInvoiceUsageQueryResponse struct {
	DeliveryID    kernel.UUID
	StoreID       kernel.UUID
	BLNumber      *string
	DeliveredDate *time.Time
}
