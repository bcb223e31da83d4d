package http

import (
	"encoding/json"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/delivery"
)

// Request bodies. Amounts travel as decimal strings to avoid float rounding;
// optional fields are pointers so "absent" and "zero" stay distinguishable.

type createOrderRequest struct {
	SupplierID  string    `json:"supplierId" validate:"required,uuid"`
	StoreID     string    `json:"storeId" validate:"required,uuid"`
	PlannedDate time.Time `json:"plannedDate" validate:"required"`
	Notes       string    `json:"notes"`
}

type updateOrderRequest struct {
	PlannedDate *time.Time `json:"plannedDate,omitempty"`
	Quantity    *string    `json:"quantity,omitempty" validate:"omitempty,numeric"`
	Unit        *string    `json:"unit,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type createDeliveryRequest struct {
	OrderID       *string   `json:"orderId,omitempty" validate:"omitempty,uuid"`
	SupplierID    string    `json:"supplierId" validate:"required,uuid"`
	StoreID       string    `json:"storeId" validate:"required,uuid"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
	Quantity      string    `json:"quantity" validate:"required,numeric"`
	Unit          string    `json:"unit" validate:"required"`
	Notes         string    `json:"notes"`
}

type updateDeliveryRequest struct {
	// OrderID uses a double pointer through the orderIdSet flag: the caller
	// sends "orderId": null to unlink, or omits the field to leave the link
	// alone.
	OrderIDSet       bool       `json:"-"`
	OrderID          *string    `json:"orderId,omitempty" validate:"omitempty,uuid"`
	ScheduledDate    *time.Time `json:"scheduledDate,omitempty"`
	Quantity         *string    `json:"quantity,omitempty" validate:"omitempty,numeric"`
	Unit             *string    `json:"unit,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	BLNumber         *string    `json:"blNumber,omitempty"`
	BLAmount         *string    `json:"blAmount,omitempty" validate:"omitempty,numeric"`
	InvoiceReference *string    `json:"invoiceReference,omitempty"`
	InvoiceAmount    *string    `json:"invoiceAmount,omitempty" validate:"omitempty,numeric"`
}

// UnmarshalJSON records whether the orderId key was present at all, so the
// handler can tell "unlink" (explicit null) from "no change" (absent).
func (r *updateDeliveryRequest) UnmarshalJSON(data []byte) error {
	type alias updateDeliveryRequest
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = updateDeliveryRequest(decoded)
	_, r.OrderIDSet = keys["orderId"]
	return nil
}

type validateDeliveryRequest struct {
	BLNumber *string `json:"blNumber,omitempty"`
	BLAmount *string `json:"blAmount,omitempty" validate:"omitempty,numeric"`
}

type verifyInvoicesRequest struct {
	Requests []verifyInvoiceItem `json:"requests" validate:"required,min=1,dive"`
}

type verifyInvoiceItem struct {
	DeliveryID       string `json:"deliveryId" validate:"required,uuid"`
	StoreID          string `json:"storeId" validate:"required,uuid"`
	InvoiceReference string `json:"invoiceReference" validate:"required"`
	SupplierName     string `json:"supplierName"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	SupplierID  string    `json:"supplierId"`
	StoreID     string    `json:"storeId"`
	PlannedDate time.Time `json:"plannedDate"`
	Quantity    *string   `json:"quantity,omitempty"`
	Unit        *string   `json:"unit,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

type deliveryResponse struct {
	ID               string     `json:"id"`
	OrderID          *string    `json:"orderId,omitempty"`
	SupplierID       string     `json:"supplierId"`
	StoreID          string     `json:"storeId"`
	ScheduledDate    time.Time  `json:"scheduledDate"`
	DeliveredDate    *time.Time `json:"deliveredDate,omitempty"`
	Quantity         string     `json:"quantity"`
	Unit             string     `json:"unit"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes,omitempty"`
	BLNumber         *string    `json:"blNumber,omitempty"`
	BLAmount         *string    `json:"blAmount,omitempty"`
	InvoiceReference *string    `json:"invoiceReference,omitempty"`
	InvoiceAmount    *string    `json:"invoiceAmount,omitempty"`
	Reconciled       bool       `json:"reconciled"`
	ValidatedAt      *time.Time `json:"validatedAt,omitempty"`
}

type verifyInvoiceResult struct {
	Exists    bool   `json:"exists"`
	MatchType string `json:"matchType"`
	Cached    bool   `json:"cached"`
}

type clearCacheResponse struct {
	Invalidated int64 `json:"invalidated"`
}

type invoiceUsageResponse struct {
	DeliveryID    string     `json:"deliveryId"`
	StoreID       string     `json:"storeId"`
	BLNumber      *string    `json:"blNumber,omitempty"`
	DeliveredDate *time.Time `json:"deliveredDate,omitempty"`
}

type duplicateInvoiceWarning struct {
	Warning string               `json:"warning"`
	UsedBy  invoiceUsageResponse `json:"usedBy"`
}

func deliveryResponseFromDomain(d *delivery.Delivery) deliveryResponse {
	resp := deliveryResponse{
		ID:               d.ID().String(),
		SupplierID:       d.SupplierID().String(),
		StoreID:          d.StoreID().String(),
		ScheduledDate:    d.ScheduledDate(),
		DeliveredDate:    d.DeliveredDate(),
		Quantity:         d.Quantity().String(),
		Unit:             d.Unit(),
		Status:           d.Status().String(),
		Notes:            d.Notes(),
		BLNumber:         d.BLNumber(),
		InvoiceReference: d.InvoiceReference(),
		Reconciled:       d.Reconciled(),
		ValidatedAt:      d.ValidatedAt(),
	}
	if id := d.OrderID(); id != nil {
		s := id.String()
		resp.OrderID = &s
	}
	if a := d.BLAmount(); a != nil {
		s := a.String()
		resp.BLAmount = &s
	}
	if a := d.InvoiceAmount(); a != nil {
		s := a.String()
		resp.InvoiceAmount = &s
	}
	return resp
}

func orderResponseFrom(row queries.GetOrdersQueryResponse) orderResponse {
	resp := orderResponse{
		ID:          row.ID.String(),
		SupplierID:  row.SupplierID.String(),
		StoreID:     row.StoreID.String(),
		PlannedDate: row.PlannedDate,
		Status:      row.Status,
		Notes:       row.Notes,
	}
	if row.Quantity != nil {
		q := row.Quantity.String()
		resp.Quantity = &q
	}
	resp.Unit = row.Unit
	return resp
}

func deliveryResponseFrom(row queries.GetDeliveriesQueryResponse) deliveryResponse {
	resp := deliveryResponse{
		ID:               row.ID.String(),
		SupplierID:       row.SupplierID.String(),
		StoreID:          row.StoreID.String(),
		ScheduledDate:    row.ScheduledDate,
		DeliveredDate:    row.DeliveredDate,
		Quantity:         row.Quantity.String(),
		Unit:             row.Unit,
		Status:           row.Status,
		Notes:            row.Notes,
		BLNumber:         row.BLNumber,
		InvoiceReference: row.InvoiceReference,
		Reconciled:       row.Reconciled,
		ValidatedAt:      row.ValidatedAt,
	}
	if row.OrderID != nil {
		id := row.OrderID.String()
		resp.OrderID = &id
	}
	if row.BLAmount != nil {
		a := row.BLAmount.String()
		resp.BLAmount = &a
	}
	if row.InvoiceAmount != nil {
		a := row.InvoiceAmount.String()
		resp.InvoiceAmount = &a
	}
	return resp
}
