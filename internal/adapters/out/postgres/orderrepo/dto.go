// Package orderrepo implements order persistence over GORM, including the
// mapping between the order aggregate and its database row.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Quantity and unit are nullable: an order may be created before the expected
// quantity is known.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID  uuid.UUID `gorm:"type:uuid;index"`
	StoreID     uuid.UUID `gorm:"type:uuid;index"`
	PlannedDate time.Time
	Quantity    *decimal.Decimal `gorm:"type:numeric"`
	Unit        *string
	Status      int `gorm:"index"`
	Notes       string
	CreatedBy   uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var quantity *decimal.Decimal
	if q := aggregate.Quantity(); q != nil {
		d := q.Decimal()
		quantity = &d
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		SupplierID:  aggregate.SupplierID().Bytes(),
		StoreID:     aggregate.StoreID().Bytes(),
		PlannedDate: aggregate.PlannedDate(),
		Quantity:    quantity,
		Unit:        aggregate.Unit(),
		Status:      int(aggregate.Status()),
		Notes:       aggregate.Notes(),
		CreatedBy:   aggregate.CreatedBy().Bytes(),
	}
}

// toDomain reconstructs the order aggregate from a database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
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

	var quantity *kernel.Amount
	if dto.Quantity != nil {
		amount, amountErr := kernel.NewAmount(*dto.Quantity)
		if amountErr != nil {
			return nil, amountErr
		}
		quantity = &amount
	}

	return order.RestoreOrder(
		id, supplierID, storeID,
		dto.PlannedDate, quantity, dto.Unit,
		order.Status(dto.Status), dto.Notes, createdBy,
	)
}
