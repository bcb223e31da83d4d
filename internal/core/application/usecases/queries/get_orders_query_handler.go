package queries

import (
	"context"
	"database/sql"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order rows for the visible stores.
//
// Example:
//
//	query, _ := queries.NewGetOrdersQuery(visibleStores)
//	handler := queries.NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by planned date, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	storeIDs := make([]uuid.UUID, 0, len(query.VisibleStoreIDs()))
	for _, id := range query.VisibleStoreIDs() {
		storeIDs = append(storeIDs, id.Bytes())
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			store_id,
			planned_date,
			quantity,
			unit,
			status,
			notes
		FROM orders
		WHERE store_id IN ?
		ORDER BY planned_date DESC, id
	`, storeIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, supplierID, storeID uuid.UUID
			plannedDate             time.Time
			quantity                decimal.NullDecimal
			unit                    sql.NullString
			status                  int
			notes                   string
		)

		if err = rows.Scan(
			&id, &supplierID, &storeID, &plannedDate, &quantity, &unit, &status, &notes,
		); err != nil {
			return nil, err
		}

		resp, buildErr := buildOrderResponse(
			id, supplierID, storeID, plannedDate, quantity, unit, status, notes,
		)
		if buildErr != nil {
			return nil, buildErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id, supplierID, storeID uuid.UUID,
	plannedDate time.Time,
	quantity decimal.NullDecimal,
	unit sql.NullString,
	status int,
	notes string,
) (GetOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	supplier, err := kernel.UUIDFromBytes(supplierID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	store, err := kernel.UUIDFromBytes(storeID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	resp := GetOrdersQueryResponse{
		ID:          orderID,
		SupplierID:  supplier,
		StoreID:     store,
		PlannedDate: plannedDate,
		Status:      order.Status(status).String(),
		Notes:       notes,
	}

	if quantity.Valid {
		amount, amountErr := kernel.NewAmount(quantity.Decimal)
		if amountErr != nil {
			return GetOrdersQueryResponse{}, amountErr
		}
		resp.Quantity = &amount
	}
	if unit.Valid {
		resp.Unit = &unit.String
	}

	return resp, nil
}
