package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrVerifyInvoicesCommandIsNotConstructed = errors.New(
	"VerifyInvoicesCommand must be created via NewVerifyInvoicesCommand constructor",
)

// VerificationItem is one delivery's invoice reference to check against the
// external ledger.
type VerificationItem struct {
	DeliveryID       kernel.UUID
	StoreID          kernel.UUID
	InvoiceReference string
	SupplierName     string
}

// VerifyInvoicesCommand represents a batch verification request. Items
// sharing one (store, reference) key are verified once and share the result.
type VerifyInvoicesCommand struct { //nolint:recvcheck //using for validation
	items []VerificationItem

	guard guard.ConstructorGuard
}

// NewVerifyInvoicesCommand creates a command to verify a batch of invoice
// references. The batch must be non-empty and every item fully identified.
func NewVerifyInvoicesCommand(items []VerificationItem) (VerifyInvoicesCommand, error) {
	if len(items) == 0 {
		return VerifyInvoicesCommand{}, errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.DeliveryID.Validate(); err != nil {
			return VerifyInvoicesCommand{}, errs.NewValueIsInvalidErrorWithCause("deliveryId", err)
		}
		if err := item.StoreID.Validate(); err != nil {
			return VerifyInvoicesCommand{}, errs.NewValueIsInvalidErrorWithCause("storeId", err)
		}
		if item.InvoiceReference == "" {
			return VerifyInvoicesCommand{}, errs.NewValueIsRequiredError("invoiceReference")
		}
	}

	return VerifyInvoicesCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrVerifyInvoicesCommandIsNotConstructed)
}

// Items returns the verification requests in batch order.
func (c VerifyInvoicesCommand) Items() []VerificationItem {
	return c.items
}
