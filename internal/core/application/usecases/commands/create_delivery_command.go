package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery,
// optionally linked to an order from the start.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	orderID       *kernel.UUID
	supplierID    kernel.UUID
	storeID       kernel.UUID
	scheduledDate time.Time
	quantity      kernel.Amount
	unit          string
	notes         string
	createdBy     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// orderID may be nil for an unlinked delivery.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID *kernel.UUID,
	supplierID, storeID kernel.UUID,
	scheduledDate time.Time,
	quantity kernel.Amount,
	unit string,
	notes string,
	createdBy kernel.UUID,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		quantity: quantity,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setStoreID(storeID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setUnit(unit),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the linked order identifier, or nil when unlinked.
func (c CreateDeliveryCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// SupplierID returns the supplier performing the delivery.
func (c CreateDeliveryCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// StoreID returns the store the delivery is scoped to.
func (c CreateDeliveryCommand) StoreID() kernel.UUID {
	return c.storeID
}

// ScheduledDate returns the planned delivery date.
func (c CreateDeliveryCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// Quantity returns the delivered quantity.
func (c CreateDeliveryCommand) Quantity() kernel.Amount {
	return c.quantity
}

// Unit returns the measurement unit of the quantity.
func (c CreateDeliveryCommand) Unit() string {
	return c.unit
}

// Notes returns the operator notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

// CreatedBy returns the identity of the caller creating the delivery.
func (c CreateDeliveryCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supplierId", err)
	}
	c.supplierID = id
	return nil
}

func (c *CreateDeliveryCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}
	c.storeID = id
	return nil
}

func (c *CreateDeliveryCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateDeliveryCommand) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	c.unit = unit
	return nil
}

func (c *CreateDeliveryCommand) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("createdBy", err)
	}
	c.createdBy = id
	return nil
}
