package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new procurement order
// with a supplier for a store. The order starts in pending status with no
// quantity; quantity arrives later, when a delivery is linked or an operator
// fills it in.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	supplierID  kernel.UUID
	storeID     kernel.UUID
	plannedDate time.Time
	notes       string
	createdBy   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new procurement order.
// Validates all identifiers and requires a non-zero planned date.
func NewCreateOrderCommand(
	orderID, supplierID, storeID kernel.UUID,
	plannedDate time.Time,
	notes string,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setStoreID(storeID),
		cmd.setPlannedDate(plannedDate),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the supplier the order is placed with.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// StoreID returns the store the order is scoped to.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// PlannedDate returns the planned procurement date.
func (c CreateOrderCommand) PlannedDate() time.Time {
	return c.plannedDate
}

// Notes returns the operator notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// CreatedBy returns the identity of the caller creating the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supplierId", err)
	}
	c.supplierID = id
	return nil
}

func (c *CreateOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}
	c.storeID = id
	return nil
}

func (c *CreateOrderCommand) setPlannedDate(plannedDate time.Time) error {
	if plannedDate.IsZero() {
		return errs.NewValueIsRequiredError("plannedDate")
	}
	c.plannedDate = plannedDate
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("createdBy", err)
	}
	c.createdBy = id
	return nil
}
