package order

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrUnitIsRequired is returned when a quantity is set without a unit.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")
)

// Order represents a planned procurement request for a quantity of goods from
// a supplier to a store. It is the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - Identity, supplier, store, and creator are valid UUIDs
//   - Status is always one of Pending, Planned, Delivered
//   - Status is Pending if and only if no delivery references the order;
//     enforcement of that equivalence lives in the lifecycle recomputation,
//     which writes the derived status back via ApplyStatus
//   - Quantity stays unset until a delivery is linked or an operator fills it in
//
// The struct uses private fields so all mutation flows through validated methods.
type Order struct {
	id          kernel.UUID
	supplierID  kernel.UUID
	storeID     kernel.UUID
	plannedDate time.Time
	quantity    *kernel.Amount
	unit        *string
	status      Status
	notes       string
	createdBy   kernel.UUID

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no quantity set.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - supplierID: the supplier the goods are ordered from
//   - storeID: the store the goods are destined for
//   - plannedDate: the date the procurement is planned for (must not be zero)
//   - notes: free-form operator notes (may be empty)
//   - createdBy: identity of the caller creating the order
//
// Returns a validation error if any identifier is invalid or plannedDate is zero.
func NewOrder(
	id, supplierID, storeID kernel.UUID,
	plannedDate time.Time,
	notes string,
	createdBy kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSupplierID(supplierID),
		o.setStoreID(storeID),
		o.setPlannedDate(plannedDate),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any valid status and an optional quantity/unit
// pair. Used exclusively by repository implementations.
func RestoreOrder(
	id, supplierID, storeID kernel.UUID,
	plannedDate time.Time,
	quantity *kernel.Amount,
	unit *string,
	status Status,
	notes string,
	createdBy kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, supplierID, storeID, plannedDate, notes, createdBy)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.quantity = quantity
	o.unit = unit

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SupplierID returns the supplier the order is placed with.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// StoreID returns the store the order is scoped to.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// PlannedDate returns the planned procurement date.
func (o *Order) PlannedDate() time.Time {
	return o.plannedDate
}

// Quantity returns the ordered quantity, or nil while unset.
func (o *Order) Quantity() *kernel.Amount {
	return o.quantity
}

// Unit returns the quantity unit, or nil while unset.
func (o *Order) Unit() *string {
	return o.unit
}

// Status returns the current derived status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the operator notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedBy returns the identity of the caller who created the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// ApplyStatus sets the order's status to a freshly derived value.
//
// The target status is validated but no transition matrix is enforced: status
// derivation always inspects the full current set of linked deliveries, so any
// valid status may follow any other.
func (o *Order) ApplyStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Reschedule moves the planned procurement date.
func (o *Order) Reschedule(plannedDate time.Time) error {
	return o.setPlannedDate(plannedDate)
}

// SetQuantity records the ordered quantity and its unit.
// The unit must not be empty when a quantity is set.
func (o *Order) SetQuantity(quantity kernel.Amount, unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	o.quantity = &quantity
	o.unit = &unit
	return nil
}

// ChangeNotes replaces the operator notes.
func (o *Order) ChangeNotes(notes string) {
	o.notes = notes
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supplierId", err)
	}
	o.supplierID = id
	return nil
}

func (o *Order) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}
	o.storeID = id
	return nil
}

func (o *Order) setPlannedDate(plannedDate time.Time) error {
	if plannedDate.IsZero() {
		return errs.NewValueIsRequiredError("plannedDate")
	}
	o.plannedDate = plannedDate
	return nil
}

func (o *Order) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("createdBy", err)
	}
	o.createdBy = id
	return nil
}
