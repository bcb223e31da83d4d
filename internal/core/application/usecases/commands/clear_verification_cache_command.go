package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrClearVerificationCacheCommandIsNotConstructed = errors.New(
	"ClearVerificationCacheCommand must be created via NewClearVerificationCacheCommand constructor",
)

// ClearVerificationCacheCommand represents the elevated-role cache busting
// operation. Invalidation is per-reference: every store sharing the reference
// loses its entry.
type ClearVerificationCacheCommand struct { //nolint:recvcheck //using for validation
	invoiceReference string

	guard guard.ConstructorGuard
}

// NewClearVerificationCacheCommand creates a command to invalidate all cache
// entries for an invoice reference.
func NewClearVerificationCacheCommand(invoiceReference string) (ClearVerificationCacheCommand, error) {
	if invoiceReference == "" {
		return ClearVerificationCacheCommand{}, errs.NewValueIsRequiredError("invoiceReference")
	}

	return ClearVerificationCacheCommand{
		invoiceReference: invoiceReference,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearVerificationCacheCommand) Validate() error {
	return c.guard.Validate(ErrClearVerificationCacheCommandIsNotConstructed)
}

// InvoiceReference returns the reference to invalidate.
func (c ClearVerificationCacheCommand) InvoiceReference() string {
	return c.invoiceReference
}
