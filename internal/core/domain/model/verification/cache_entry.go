package verification

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrCacheEntryIsNotConstructed is returned when a CacheEntry instance was not
// created through the NewCacheEntry or RestoreCacheEntry factory functions.
var ErrCacheEntryIsNotConstructed = errors.New("CacheEntry must be created via NewCacheEntry or RestoreCacheEntry")

// Result is the outcome of a single ledger lookup for an invoice reference.
type Result struct {
	Exists    bool
	MatchType MatchType
}

// CacheEntry stores one verification result keyed by (store, invoice
// reference). N deliveries sharing an invoice reference within a store reuse a
// single entry, which is the whole point of keying by reference rather than by
// delivery.
//
// An entry with isValid == false is known stale: it stays around for audit but
// never counts as a cache hit, forcing re-verification.
type CacheEntry struct {
	storeID          kernel.UUID
	invoiceReference string
	exists           bool
	matchType        MatchType
	supplierName     string
	isValid          bool
	verifiedAt       time.Time

	guard kernel.ConstructorGuard
}

// NewCacheEntry creates a valid cache entry from a fresh verification result.
func NewCacheEntry(
	storeID kernel.UUID,
	invoiceReference string,
	result Result,
	supplierName string,
	verifiedAt time.Time,
) (*CacheEntry, error) {
	e := &CacheEntry{
		exists:       result.Exists,
		supplierName: supplierName,
		isValid:      true,
		verifiedAt:   verifiedAt,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setStoreID(storeID),
		e.setInvoiceReference(invoiceReference),
		e.setMatchType(result.MatchType),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreCacheEntry reconstructs a cache entry from persisted state,
// including the staleness flag. Used exclusively by cache adapters.
func RestoreCacheEntry(
	storeID kernel.UUID,
	invoiceReference string,
	exists bool,
	matchType MatchType,
	supplierName string,
	isValid bool,
	verifiedAt time.Time,
) (*CacheEntry, error) {
	e, err := NewCacheEntry(storeID, invoiceReference, Result{Exists: exists, MatchType: matchType}, supplierName, verifiedAt)
	if err != nil {
		return nil, err
	}
	e.isValid = isValid
	return e, nil
}

// Validate ensures the CacheEntry instance was properly constructed.
func (e *CacheEntry) Validate() error {
	if e == nil {
		return ErrCacheEntryIsNotConstructed
	}
	return e.guard.Validate(ErrCacheEntryIsNotConstructed)
}

// StoreID returns the store the entry is scoped to.
func (e *CacheEntry) StoreID() kernel.UUID {
	return e.storeID
}

// InvoiceReference returns the invoice reference the entry is keyed by.
func (e *CacheEntry) InvoiceReference() string {
	return e.invoiceReference
}

// Exists reports whether the ledger holds the reference.
func (e *CacheEntry) Exists() bool {
	return e.exists
}

// MatchType returns how the ledger lookup matched.
func (e *CacheEntry) MatchType() MatchType {
	return e.matchType
}

// SupplierName returns the supplier name last seen for this reference.
// Informational only.
func (e *CacheEntry) SupplierName() string {
	return e.supplierName
}

// IsValid reports whether the entry may serve as a cache hit.
func (e *CacheEntry) IsValid() bool {
	return e.isValid
}

// VerifiedAt returns when the ledger lookup behind this entry ran.
func (e *CacheEntry) VerifiedAt() time.Time {
	return e.verifiedAt
}

// Result returns the entry's lookup outcome.
func (e *CacheEntry) Result() Result {
	return Result{Exists: e.exists, MatchType: e.matchType}
}

// MarkStale invalidates the entry so it no longer counts as a cache hit.
func (e *CacheEntry) MarkStale() {
	e.isValid = false
}

func (e *CacheEntry) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}
	e.storeID = id
	return nil
}

func (e *CacheEntry) setInvoiceReference(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("invoiceReference")
	}
	e.invoiceReference = ref
	return nil
}

func (e *CacheEntry) setMatchType(mt MatchType) error {
	if err := mt.Validate(); err != nil {
		return err
	}
	e.matchType = mt
	return nil
}
