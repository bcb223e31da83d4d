package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		amount, err := kernel.NewAmount(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("accepts positive values", func(t *testing.T) {
		amount, err := kernel.NewAmount(decimal.NewFromFloat(129.90))

		require.NoError(t, err)
		assert.Equal(t, "129.9", amount.String())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := kernel.NewAmount(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAmountFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		amount, err := kernel.NewAmountFromString("42.50")

		require.NoError(t, err)
		assert.Equal(t, "42.5", amount.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.NewAmountFromString("abc")
		require.Error(t, err)
	})

	t.Run("rejects negative strings", func(t *testing.T) {
		_, err := kernel.NewAmountFromString("-10")
		require.Error(t, err)
	})
}

func TestAmount_IsEqual(t *testing.T) {
	a, err := kernel.NewAmountFromString("1.50")
	require.NoError(t, err)
	b, err := kernel.NewAmountFromString("1.5")
	require.NoError(t, err)
	c, err := kernel.NewAmountFromString("2")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
