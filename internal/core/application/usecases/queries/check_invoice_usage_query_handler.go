package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckInvoiceUsageQueryHandler scans reconciled deliveries for a duplicate
// invoice reference.
type CheckInvoiceUsageQueryHandler struct {
	db *gorm.DB
}

// NewCheckInvoiceUsageQueryHandler creates a handler for invoice usage checks.
func NewCheckInvoiceUsageQueryHandler(db *gorm.DB) CheckInvoiceUsageQueryHandler {
	return CheckInvoiceUsageQueryHandler{db: db}
}

// Handle executes the scan. Returns nil when no reconciled delivery bears the
// reference.
func (h CheckInvoiceUsageQueryHandler) Handle(
	ctx context.Context,
	query CheckInvoiceUsageQuery,
) (*CheckInvoiceUsageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT id, store_id, bl_number, delivered_date
		FROM deliveries
		WHERE invoice_reference = ? AND reconciled = true`
	args := []any{query.InvoiceReference()}
	if query.ExcludeDeliveryID() != nil {
		sqlText += ` AND id != ?`
		args = append(args, query.ExcludeDeliveryID().Bytes())
	}
	sqlText += ` ORDER BY delivered_date DESC LIMIT 1`

	var (
		id, storeID   uuid.UUID
		blNumber      sql.NullString
		deliveredDate sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(sqlText, args...).Row()
	if err := row.Scan(&id, &storeID, &blNumber, &deliveredDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil //absence of usage is a valid outcome
		}
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	store, err := kernel.UUIDFromBytes(storeID[:])
	if err != nil {
		return nil, err
	}

	resp := &CheckInvoiceUsageQueryResponse{
		DeliveryID: deliveryID,
		StoreID:    store,
	}
	if blNumber.Valid {
		resp.BLNumber = &blNumber.String
	}
	if deliveredDate.Valid {
		resp.DeliveredDate = &deliveredDate.Time
	}

	return resp, nil
}
