package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testAmount(t *testing.T, f float64) kernel.Amount {
	t.Helper()
	amount, err := kernel.NewAmountFromFloat(f)
	require.NoError(t, err)
	return amount
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		"", kernel.NewUUID(),
	)
	require.NoError(t, err)
	return o
}

func testDelivery(t *testing.T, orderID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		testAmount(t, 40), "kg", "", kernel.NewUUID(),
	)
	require.NoError(t, err)
	return d
}
