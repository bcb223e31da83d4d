package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"
)

// VerificationRequest identifies one invoice reference to look up in the
// external ledger. SupplierName is passed through to help the ledger with
// fuzzy matching; it is informational on our side.
type VerificationRequest struct {
	StoreID          kernel.UUID
	InvoiceReference string
	SupplierName     string
}

// InvoiceVerifier is the external ledger collaborator. It is opaque, possibly
// slow, and possibly failing; implementations must honor context deadlines so
// a batch can bound each lookup with an explicit timeout. A timeout is
// indistinguishable from any other verifier failure for callers.
type InvoiceVerifier interface {
	Verify(ctx context.Context, request VerificationRequest) (verification.Result, error)
}
