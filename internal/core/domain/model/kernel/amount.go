package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative decimal value object used for delivery quantities,
// delivery-note amounts, and invoice amounts. It wraps shopspring/decimal to
// avoid binary floating point artifacts in money arithmetic.
//
// The zero value is a valid amount of 0. Amounts are immutable; arithmetic
// is not exposed because the reconciliation core only stores and compares them.
//
// Example usage:
//
//	amount, err := kernel.NewAmountFromString("129.90")
//	if err != nil {
//	    // reject the input before any write
//	}
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount from a decimal value.
// Returns an error if the value is negative.
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", value.String()))
	}
	return Amount{value: value}, nil
}

// NewAmountFromString parses a decimal string into an Amount.
// Returns an error if the string is not a valid decimal or is negative.
func NewAmountFromString(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewAmount(value)
}

// NewAmountFromFloat converts a float into an Amount.
// Returns an error if the value is negative.
func NewAmountFromFloat(f float64) (Amount, error) {
	return NewAmount(decimal.NewFromFloat(f))
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String returns the canonical decimal string representation.
func (a Amount) String() string {
	return a.value.String()
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsEqual compares two amounts by numeric value, ignoring exponent differences
// ("1.50" equals "1.5").
func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}
