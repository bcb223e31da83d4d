package delivery_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T, orderID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	qty, err := kernel.NewAmountFromString("10")
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		qty, "kg", "", kernel.NewUUID(),
	)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

func TestNewDelivery(t *testing.T) {
	t.Run("creates planned delivery", func(t *testing.T) {
		orderID := kernel.NewUUID()
		d := newTestDelivery(t, &orderID)

		assert.Equal(t, delivery.Planned, d.Status())
		assert.False(t, d.Reconciled())
		assert.Nil(t, d.DeliveredDate())
		assert.Nil(t, d.ValidatedAt())
		assert.Nil(t, d.BLNumber())
		assert.Nil(t, d.InvoiceReference())
		require.NotNil(t, d.OrderID())
		assert.True(t, d.OrderID().IsEqual(orderID))
	})

	t.Run("allows unlinked delivery", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		assert.Nil(t, d.OrderID())
	})

	t.Run("rejects empty unit", func(t *testing.T) {
		qty, err := kernel.NewAmountFromString("1")
		require.NoError(t, err)

		_, err = delivery.NewDelivery(
			kernel.NewUUID(), nil, kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), qty, "", "", kernel.NewUUID(),
		)
		require.Error(t, err)
	})

	t.Run("rejects invalid linked order id", func(t *testing.T) {
		qty, err := kernel.NewAmountFromString("1")
		require.NoError(t, err)

		var zero kernel.UUID
		_, err = delivery.NewDelivery(
			kernel.NewUUID(), &zero, kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), qty, "kg", "", kernel.NewUUID(),
		)
		require.Error(t, err)
	})
}

func TestDelivery_MarkDelivered(t *testing.T) {
	now := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)

	t.Run("sets status and dates", func(t *testing.T) {
		d := newTestDelivery(t, nil)

		require.NoError(t, d.MarkDelivered(now, strPtr("BL-100"), nil))

		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveredDate())
		assert.Equal(t, now, *d.DeliveredDate())
		require.NotNil(t, d.ValidatedAt())
		assert.Equal(t, now, *d.ValidatedAt())
		assert.Equal(t, "BL-100", *d.BLNumber())
	})

	t.Run("records bl amount alongside number", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		amount, err := kernel.NewAmountFromString("250.00")
		require.NoError(t, err)

		require.NoError(t, d.MarkDelivered(now, strPtr("BL-7"), &amount))
		require.NotNil(t, d.BLAmount())
		assert.True(t, d.BLAmount().IsEqual(amount))
	})

	t.Run("rejects amount without number", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		amount, err := kernel.NewAmountFromString("99")
		require.NoError(t, err)

		err = d.MarkDelivered(now, nil, &amount)
		require.ErrorIs(t, err, delivery.ErrBLAmountWithoutNumber)
		// Rejected before any write.
		assert.Equal(t, delivery.Planned, d.Status())
		assert.Nil(t, d.DeliveredDate())
	})

	t.Run("validation without note data is allowed", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		require.NoError(t, d.MarkDelivered(now, nil, nil))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Nil(t, d.BLNumber())
	})

	t.Run("does not touch reconciled or invoice fields", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		d.AttachInvoice(strPtr("INV-1"), nil)
		d.MarkReconciled()

		require.NoError(t, d.MarkDelivered(now, nil, nil))

		assert.True(t, d.Reconciled())
		assert.Equal(t, "INV-1", *d.InvoiceReference())
	})
}

func TestDelivery_Devalidate(t *testing.T) {
	now := time.Now()
	d := newTestDelivery(t, nil)
	amount, err := kernel.NewAmountFromString("42")
	require.NoError(t, err)
	require.NoError(t, d.MarkDelivered(now, strPtr("BL-9"), &amount))
	d.MarkReconciled()

	d.Devalidate()

	// Only the reconciled flag changes; paperwork and status survive.
	assert.False(t, d.Reconciled())
	assert.Equal(t, delivery.Delivered, d.Status())
	assert.Equal(t, "BL-9", *d.BLNumber())
	require.NotNil(t, d.BLAmount())
	assert.True(t, d.BLAmount().IsEqual(amount))
}

func TestDelivery_AssignOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	d := newTestDelivery(t, &orderID)

	require.NoError(t, d.AssignOrder(nil))
	assert.Nil(t, d.OrderID())

	newOrderID := kernel.NewUUID()
	require.NoError(t, d.AssignOrder(&newOrderID))
	assert.True(t, d.OrderID().IsEqual(newOrderID))
}

func TestDelivery_AttachDeliveryNote(t *testing.T) {
	t.Run("amount allowed when number already present", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		require.NoError(t, d.AttachDeliveryNote(strPtr("BL-1"), nil))

		amount, err := kernel.NewAmountFromString("15")
		require.NoError(t, err)
		require.NoError(t, d.AttachDeliveryNote(nil, &amount))
	})

	t.Run("amount without any number is rejected", func(t *testing.T) {
		d := newTestDelivery(t, nil)
		amount, err := kernel.NewAmountFromString("15")
		require.NoError(t, err)

		require.ErrorIs(t, d.AttachDeliveryNote(nil, &amount), delivery.ErrBLAmountWithoutNumber)
	})
}

func TestRestoreDelivery(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	qty, err := kernel.NewAmountFromString("5")
	require.NoError(t, err)
	validated := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	d, err := delivery.RestoreDelivery(
		id, &orderID, kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), &validated,
		qty, "box", delivery.Delivered, "notes",
		strPtr("BL-3"), nil, strPtr("INV-3"), nil,
		true, &validated, kernel.NewUUID(),
	)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, d.Status())
	assert.True(t, d.Reconciled())
	assert.Equal(t, "INV-3", *d.InvoiceReference())
	require.NoError(t, d.Validate())
}

func TestDelivery_Validate(t *testing.T) {
	var d delivery.Delivery
	require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
}
