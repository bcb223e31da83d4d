// Package deliveryrepo implements delivery persistence over GORM, including
// the link summary the order lifecycle recomputation reads.
package deliveryrepo

import (
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. OrderID is nullable: an unlinked delivery keeps existing when
// its order goes away.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	SupplierID       uuid.UUID  `gorm:"type:uuid;index"`
	StoreID          uuid.UUID  `gorm:"type:uuid;index"`
	ScheduledDate    time.Time
	DeliveredDate    *time.Time
	Quantity         decimal.Decimal `gorm:"type:numeric"`
	Unit             string
	Status           int `gorm:"index"`
	Notes            string
	BLNumber         *string          `gorm:"column:bl_number"`
	BLAmount         *decimal.Decimal `gorm:"column:bl_amount;type:numeric"`
	InvoiceReference *string          `gorm:"index"`
	InvoiceAmount    *decimal.Decimal `gorm:"type:numeric"`
	Reconciled       bool
	ValidatedAt      *time.Time
	CreatedBy        uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          orderID,
		SupplierID:       aggregate.SupplierID().Bytes(),
		StoreID:          aggregate.StoreID().Bytes(),
		ScheduledDate:    aggregate.ScheduledDate(),
		DeliveredDate:    aggregate.DeliveredDate(),
		Quantity:         aggregate.Quantity().Decimal(),
		Unit:             aggregate.Unit(),
		Status:           int(aggregate.Status()),
		Notes:            aggregate.Notes(),
		BLNumber:         aggregate.BLNumber(),
		BLAmount:         decimalPtr(aggregate.BLAmount()),
		InvoiceReference: aggregate.InvoiceReference(),
		InvoiceAmount:    decimalPtr(aggregate.InvoiceAmount()),
		Reconciled:       aggregate.Reconciled(),
		ValidatedAt:      aggregate.ValidatedAt(),
		CreatedBy:        aggregate.CreatedBy().Bytes(),
	}
}

func decimalPtr(amount *kernel.Amount) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	d := amount.Decimal()
	return &d
}

func amountPtr(d *decimal.Decimal) (*kernel.Amount, error) {
	if d == nil {
		return nil, nil //nolint:nilnil //absent column maps to absent amount
	}
	amount, err := kernel.NewAmount(*d)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// toDomain reconstructs the delivery aggregate from a database row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	quantity, err := kernel.NewAmount(dto.Quantity)
	if err != nil {
		return nil, err
	}
	blAmount, err := amountPtr(dto.BLAmount)
	if err != nil {
		return nil, err
	}
	invoiceAmount, err := amountPtr(dto.InvoiceAmount)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, supplierID, storeID,
		dto.ScheduledDate, dto.DeliveredDate,
		quantity, dto.Unit,
		delivery.Status(dto.Status), dto.Notes,
		dto.BLNumber, blAmount,
		dto.InvoiceReference, invoiceAmount,
		dto.Reconciled, dto.ValidatedAt, createdBy,
	)
}
