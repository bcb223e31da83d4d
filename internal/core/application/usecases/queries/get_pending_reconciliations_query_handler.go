package queries

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingReconciliationsQueryHandler reads deliveries that were delivered
// and invoiced but never positively matched against the ledger.
type GetPendingReconciliationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingReconciliationsQueryHandler creates a handler for pending
// reconciliation queries.
func NewGetPendingReconciliationsQueryHandler(db *gorm.DB) GetPendingReconciliationsQueryHandler {
	return GetPendingReconciliationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by delivered date, oldest
// first, so the longest-waiting deliveries are retried first.
func (h GetPendingReconciliationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingReconciliationsQuery,
) ([]GetPendingReconciliationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]GetPendingReconciliationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, store_id, invoice_reference
		FROM deliveries
		WHERE status = ?
		  AND reconciled = false
		  AND invoice_reference IS NOT NULL
		ORDER BY delivered_date, id
	`, delivery.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, storeID      uuid.UUID
			invoiceReference string
		)
		if err = rows.Scan(&id, &storeID, &invoiceReference); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		store, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}

		pending = append(pending, GetPendingReconciliationsQueryResponse{
			DeliveryID:       deliveryID,
			StoreID:          store,
			InvoiceReference: invoiceReference,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
