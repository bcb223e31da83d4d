package queries

import (
	"context"
	"database/sql"
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler reads delivery rows for the visible stores.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery list queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// deliveryRow mirrors the scanned columns before conversion to the response.
type deliveryRow struct {
	id, supplierID, storeID  uuid.UUID
	orderID                  uuid.NullUUID
	scheduledDate            time.Time
	deliveredDate            sql.NullTime
	quantity                 decimal.Decimal
	unit, notes              string
	status                   int
	blNumber                 sql.NullString
	blAmount                 decimal.NullDecimal
	invoiceReference         sql.NullString
	invoiceAmount            decimal.NullDecimal
	reconciled               bool
	validatedAt              sql.NullTime
}

// Handle executes the query. Results are sorted by scheduled date, newest
// first.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	storeIDs := make([]uuid.UUID, 0, len(query.VisibleStoreIDs()))
	for _, id := range query.VisibleStoreIDs() {
		storeIDs = append(storeIDs, id.Bytes())
	}

	sqlText := `
		SELECT
			id, order_id, supplier_id, store_id,
			scheduled_date, delivered_date,
			quantity, unit, status, notes,
			bl_number, bl_amount,
			invoice_reference, invoice_amount,
			reconciled, validated_at
		FROM deliveries
		WHERE store_id IN ?`
	args := []any{storeIDs}
	if query.OrderID() != nil {
		sqlText += ` AND order_id = ?`
		args = append(args, query.OrderID().Bytes())
	}
	sqlText += ` ORDER BY scheduled_date DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetDeliveriesQueryResponse, 0)
	for rows.Next() {
		var row deliveryRow
		if err = rows.Scan(
			&row.id, &row.orderID, &row.supplierID, &row.storeID,
			&row.scheduledDate, &row.deliveredDate,
			&row.quantity, &row.unit, &row.status, &row.notes,
			&row.blNumber, &row.blAmount,
			&row.invoiceReference, &row.invoiceAmount,
			&row.reconciled, &row.validatedAt,
		); err != nil {
			return nil, err
		}

		resp, buildErr := row.toResponse()
		if buildErr != nil {
			return nil, buildErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (r deliveryRow) toResponse() (GetDeliveriesQueryResponse, error) {
	deliveryID, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}
	supplier, err := kernel.UUIDFromBytes(r.supplierID[:])
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}
	store, err := kernel.UUIDFromBytes(r.storeID[:])
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}
	quantity, err := kernel.NewAmount(r.quantity)
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}

	resp := GetDeliveriesQueryResponse{
		ID:            deliveryID,
		SupplierID:    supplier,
		StoreID:       store,
		ScheduledDate: r.scheduledDate,
		Quantity:      quantity,
		Unit:          r.unit,
		Status:        delivery.Status(r.status).String(),
		Notes:         r.notes,
		Reconciled:    r.reconciled,
	}

	if r.orderID.Valid {
		orderID, idErr := kernel.UUIDFromBytes(r.orderID.UUID[:])
		if idErr != nil {
			return GetDeliveriesQueryResponse{}, idErr
		}
		resp.OrderID = &orderID
	}
	if r.deliveredDate.Valid {
		resp.DeliveredDate = &r.deliveredDate.Time
	}
	if r.blNumber.Valid {
		resp.BLNumber = &r.blNumber.String
	}
	if r.blAmount.Valid {
		amount, amountErr := kernel.NewAmount(r.blAmount.Decimal)
		if amountErr != nil {
			return GetDeliveriesQueryResponse{}, amountErr
		}
		resp.BLAmount = &amount
	}
	if r.invoiceReference.Valid {
		resp.InvoiceReference = &r.invoiceReference.String
	}
	if r.invoiceAmount.Valid {
		amount, amountErr := kernel.NewAmount(r.invoiceAmount.Decimal)
		if amountErr != nil {
			return GetDeliveriesQueryResponse{}, amountErr
		}
		resp.InvoiceAmount = &amount
	}
	if r.validatedAt.Valid {
		resp.ValidatedAt = &r.validatedAt.Time
	}

	return resp, nil
}
