package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"
)

// VerificationCache stores invoice verification results keyed by
// (store, invoice reference) so that deliveries sharing one reference are
// verified against the external ledger once.
//
// The cache is an optimization, never the source of truth for reconciliation
// state: callers treat write failures as non-fatal and proceed.
type VerificationCache interface {
	// Lookup returns the cached entry for the key, or (nil, nil) when there is
	// no entry or the entry has been invalidated. Only a valid entry counts as
	// a hit.
	Lookup(ctx context.Context, storeID kernel.UUID, invoiceReference string) (*verification.CacheEntry, error)

	// Store upserts the entry for its (store, reference) key and marks it
	// valid. Concurrent stores for the same key are safe: last write wins,
	// duplicates are not an error.
	Store(ctx context.Context, entry *verification.CacheEntry) error

	// Invalidate marks every entry carrying the invoice reference stale,
	// across all stores sharing it. Returns how many entries were affected.
	Invalidate(ctx context.Context, invoiceReference string) (int64, error)
}
