package delivery

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory functions.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrBLAmountWithoutNumber is returned when a delivery-note amount is
	// supplied without the corresponding delivery-note number.
	ErrBLAmountWithoutNumber = errs.NewValueIsInvalidError("blAmount requires blNumber")
)

// Delivery represents a physical receipt event, optionally linked to an Order,
// carrying delivery-note (BL) and invoice metadata.
//
// Delivery maintains these invariants:
//   - Identity, supplier, store, and creator are valid UUIDs
//   - Status is Planned until validation marks it Delivered
//   - deliveredDate and validatedAt are set only by validation
//   - reconciled is set true only after a positive ledger match and is the
//     only field devalidation clears
//   - A delivery-note amount never appears without a delivery-note number
type Delivery struct {
	id            kernel.UUID
	orderID       *kernel.UUID
	supplierID    kernel.UUID
	storeID       kernel.UUID
	scheduledDate time.Time
	deliveredDate *time.Time
	quantity      kernel.Amount
	unit          string
	status        Status
	notes         string

	blNumber *string
	blAmount *kernel.Amount

	invoiceReference *string
	invoiceAmount    *kernel.Amount

	reconciled  bool
	validatedAt *time.Time
	createdBy   kernel.UUID

	isConstructed bool
}

// NewDelivery creates a new Delivery in Planned status.
// orderID may be nil for a delivery not (yet) linked to any order.
func NewDelivery(
	id kernel.UUID,
	orderID *kernel.UUID,
	supplierID, storeID kernel.UUID,
	scheduledDate time.Time,
	quantity kernel.Amount,
	unit string,
	notes string,
	createdBy kernel.UUID,
) (*Delivery, error) {
	d := &Delivery{
		status:        Planned,
		quantity:      quantity,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setSupplierID(supplierID),
		d.setStoreID(storeID),
		d.setScheduledDate(scheduledDate),
		d.setUnit(unit),
		d.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persisted state.
// Used exclusively by repository implementations.
//
//nolint:gocritic // the wide parameter list mirrors the persisted row
func RestoreDelivery(
	id kernel.UUID,
	orderID *kernel.UUID,
	supplierID, storeID kernel.UUID,
	scheduledDate time.Time,
	deliveredDate *time.Time,
	quantity kernel.Amount,
	unit string,
	status Status,
	notes string,
	blNumber *string,
	blAmount *kernel.Amount,
	invoiceReference *string,
	invoiceAmount *kernel.Amount,
	reconciled bool,
	validatedAt *time.Time,
	createdBy kernel.UUID,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, supplierID, storeID, scheduledDate, quantity, unit, notes, createdBy)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status
	d.deliveredDate = deliveredDate
	d.blNumber = blNumber
	d.blAmount = blAmount
	d.invoiceReference = invoiceReference
	d.invoiceAmount = invoiceAmount
	d.reconciled = reconciled
	d.validatedAt = validatedAt

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the linked order's identifier, or nil when unlinked.
func (d *Delivery) OrderID() *kernel.UUID {
	return d.orderID
}

// SupplierID returns the supplier the delivery originates from.
func (d *Delivery) SupplierID() kernel.UUID {
	return d.supplierID
}

// StoreID returns the store the delivery is scoped to.
func (d *Delivery) StoreID() kernel.UUID {
	return d.storeID
}

// ScheduledDate returns the date the delivery is expected.
func (d *Delivery) ScheduledDate() time.Time {
	return d.scheduledDate
}

// DeliveredDate returns the date of validation, or nil while Planned.
func (d *Delivery) DeliveredDate() *time.Time {
	return d.deliveredDate
}

// Quantity returns the delivered quantity.
func (d *Delivery) Quantity() kernel.Amount {
	return d.quantity
}

// Unit returns the quantity unit.
func (d *Delivery) Unit() string {
	return d.unit
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// Notes returns the operator notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// BLNumber returns the delivery-note number, or nil when not entered.
func (d *Delivery) BLNumber() *string {
	return d.blNumber
}

// BLAmount returns the delivery-note amount, or nil when not entered.
func (d *Delivery) BLAmount() *kernel.Amount {
	return d.blAmount
}

// InvoiceReference returns the supplier invoice reference, or nil.
func (d *Delivery) InvoiceReference() *string {
	return d.invoiceReference
}

// InvoiceAmount returns the supplier invoice amount, or nil.
func (d *Delivery) InvoiceAmount() *kernel.Amount {
	return d.invoiceAmount
}

// Reconciled reports whether the delivery's invoice reference was positively
// matched against the external ledger.
func (d *Delivery) Reconciled() bool {
	return d.reconciled
}

// ValidatedAt returns the validation timestamp, or nil while Planned.
func (d *Delivery) ValidatedAt() *time.Time {
	return d.validatedAt
}

// CreatedBy returns the identity of the caller who created the delivery.
func (d *Delivery) CreatedBy() kernel.UUID {
	return d.createdBy
}

// AssignOrder links the delivery to an order, or unlinks it when orderID is nil.
// Lifecycle recomputation of the affected orders happens in the application layer.
func (d *Delivery) AssignOrder(orderID *kernel.UUID) error {
	return d.setOrderID(orderID)
}

// MarkDelivered validates the delivery: status becomes Delivered and both
// deliveredDate and validatedAt are stamped with now. Optional delivery-note
// fields are recorded when supplied. Re-validating an already delivered
// delivery refreshes the dates.
//
// Invoice fields and the reconciled flag are never touched here.
func (d *Delivery) MarkDelivered(now time.Time, blNumber *string, blAmount *kernel.Amount) error {
	if err := d.validateDeliveryNote(blNumber, blAmount); err != nil {
		return err
	}

	d.status = Delivered
	d.deliveredDate = &now
	d.validatedAt = &now
	if blNumber != nil {
		d.blNumber = blNumber
	}
	if blAmount != nil {
		d.blAmount = blAmount
	}
	return nil
}

// Devalidate clears the reconciled flag and nothing else: status, blNumber,
// and blAmount stay untouched so previously entered paperwork survives and the
// record remains editable.
func (d *Delivery) Devalidate() {
	d.reconciled = false
}

// MarkReconciled flags the delivery as reconciled after a positive ledger match.
func (d *Delivery) MarkReconciled() {
	d.reconciled = true
}

// AttachDeliveryNote records the delivery-note fields outside of validation.
// Passing nil for a field leaves it unchanged.
func (d *Delivery) AttachDeliveryNote(blNumber *string, blAmount *kernel.Amount) error {
	if err := d.validateDeliveryNote(blNumber, blAmount); err != nil {
		return err
	}
	if blNumber != nil {
		d.blNumber = blNumber
	}
	if blAmount != nil {
		d.blAmount = blAmount
	}
	return nil
}

// AttachInvoice records the supplier invoice fields.
// Passing nil for a field leaves it unchanged.
func (d *Delivery) AttachInvoice(reference *string, amount *kernel.Amount) {
	if reference != nil {
		d.invoiceReference = reference
	}
	if amount != nil {
		d.invoiceAmount = amount
	}
}

// Reschedule moves the expected delivery date.
func (d *Delivery) Reschedule(scheduledDate time.Time) error {
	return d.setScheduledDate(scheduledDate)
}

// ChangeQuantity replaces the delivered quantity and unit.
func (d *Delivery) ChangeQuantity(quantity kernel.Amount, unit string) error {
	if err := d.setUnit(unit); err != nil {
		return err
	}
	d.quantity = quantity
	return nil
}

// ChangeNotes replaces the operator notes.
func (d *Delivery) ChangeNotes(notes string) {
	d.notes = notes
}

// validateDeliveryNote enforces that an amount never arrives without a number,
// neither in the incoming fields nor in the resulting combined state.
func (d *Delivery) validateDeliveryNote(blNumber *string, blAmount *kernel.Amount) error {
	if blAmount == nil {
		return nil
	}
	if blNumber == nil && d.blNumber == nil {
		return ErrBLAmountWithoutNumber
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID *kernel.UUID) error {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setSupplierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supplierId", err)
	}
	d.supplierID = id
	return nil
}

func (d *Delivery) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}
	d.storeID = id
	return nil
}

func (d *Delivery) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	d.scheduledDate = scheduledDate
	return nil
}

func (d *Delivery) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	d.unit = unit
	return nil
}

func (d *Delivery) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("createdBy", err)
	}
	d.createdBy = id
	return nil
}
