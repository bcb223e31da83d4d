package commands

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"
	"procurement/internal/core/ports"
)

// VerifyInvoiceResult is the per-delivery outcome of a batch verification.
type VerifyInvoiceResult struct {
	Exists    bool
	MatchType verification.MatchType
	Cached    bool
}

// cacheKey identifies one verifier lookup. Deliveries sharing a key share a
// single external call per batch.
type cacheKey struct {
	storeID          kernel.UUID
	invoiceReference string
}

// VerifyInvoicesCommandHandler orchestrates batch invoice verification:
// cache lookups first, one deduplicated verifier call per missed key, then
// cache writes and reconciled marks for positive matches.
//
// The batch is failure-isolated end to end. A verifier error or timeout
// degrades that entry to {exists:false, NONE, cached:false} and leaves the
// cache untouched so a later batch retries it; cache and persistence errors
// are logged and never abort the call. The returned map always has one entry
// per input delivery.
type VerifyInvoicesCommandHandler struct {
	uowFactory    UoWFactory
	cache         ports.VerificationCache
	verifier      ports.InvoiceVerifier
	verifyTimeout time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewVerifyInvoicesCommandHandler creates a handler for batch invoice
// verification. verifyTimeout bounds each external verifier call.
func NewVerifyInvoicesCommandHandler(
	uowFactory UoWFactory,
	cache ports.VerificationCache,
	verifier ports.InvoiceVerifier,
	verifyTimeout time.Duration,
	logger *slog.Logger,
) VerifyInvoicesCommandHandler {
	return VerifyInvoicesCommandHandler{
		uowFactory:    uowFactory,
		cache:         cache,
		verifier:      verifier,
		verifyTimeout: verifyTimeout,
		logger:        logger,
		now:           time.Now,
	}
}

// Handle processes the batch and returns one result per input delivery.
func (h *VerifyInvoicesCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyInvoicesCommand,
) (map[kernel.UUID]VerifyInvoiceResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	groups := make(map[cacheKey][]VerificationItem)
	keys := make([]cacheKey, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		key := cacheKey{storeID: item.StoreID, invoiceReference: item.InvoiceReference}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], item)
	}

	results := make(map[kernel.UUID]VerifyInvoiceResult, len(cmd.Items()))
	toReconcile := make([]kernel.UUID, 0, len(cmd.Items()))

	for _, key := range keys {
		outcome, verified := h.resolveKey(ctx, key, groups[key])
		for _, item := range groups[key] {
			results[item.DeliveryID] = outcome
			if verified && outcome.Exists {
				toReconcile = append(toReconcile, item.DeliveryID)
			}
		}
	}

	h.markReconciled(ctx, toReconcile)

	return results, nil
}

// resolveKey produces the shared outcome for one (store, reference) key.
// The second return reports whether the outcome is authoritative (cache hit
// or successful verifier call) as opposed to a degraded failure entry.
func (h *VerifyInvoicesCommandHandler) resolveKey(
	ctx context.Context,
	key cacheKey,
	items []VerificationItem,
) (VerifyInvoiceResult, bool) {
	entry, err := h.cache.Lookup(ctx, key.storeID, key.invoiceReference)
	if err != nil {
		h.logger.Warn("verification cache lookup failed",
			"storeId", key.storeID.String(),
			"invoiceReference", key.invoiceReference,
			"error", err)
	}
	if entry != nil {
		return VerifyInvoiceResult{
			Exists:    entry.Exists(),
			MatchType: entry.MatchType(),
			Cached:    true,
		}, true
	}

	verifyCtx, cancel := context.WithTimeout(ctx, h.verifyTimeout)
	defer cancel()

	result, err := h.verifier.Verify(verifyCtx, ports.VerificationRequest{
		StoreID:          key.storeID,
		InvoiceReference: key.invoiceReference,
		SupplierName:     items[0].SupplierName,
	})
	if err != nil {
		h.logger.Warn("invoice verification failed",
			"storeId", key.storeID.String(),
			"invoiceReference", key.invoiceReference,
			"error", err)
		return VerifyInvoiceResult{
			Exists:    false,
			MatchType: verification.MatchNone,
			Cached:    false,
		}, false
	}

	h.storeEntry(ctx, key, result, items[0].SupplierName)

	return VerifyInvoiceResult{
		Exists:    result.Exists,
		MatchType: result.MatchType,
		Cached:    false,
	}, true
}

func (h *VerifyInvoicesCommandHandler) storeEntry(
	ctx context.Context,
	key cacheKey,
	result verification.Result,
	supplierName string,
) {
	entry, err := verification.NewCacheEntry(
		key.storeID, key.invoiceReference, result, supplierName, h.now(),
	)
	if err != nil {
		h.logger.Warn("building verification cache entry failed",
			"invoiceReference", key.invoiceReference,
			"error", err)
		return
	}

	if err = h.cache.Store(ctx, entry); err != nil {
		h.logger.Warn("verification cache store failed",
			"storeId", key.storeID.String(),
			"invoiceReference", key.invoiceReference,
			"error", err)
	}
}

// markReconciled flags positively matched deliveries, skipping ones already
// reconciled. Persistence trouble here degrades to a log line: the caller
// still gets its complete result map and a later batch repeats the marking.
func (h *VerifyInvoicesCommandHandler) markReconciled(ctx context.Context, deliveryIDs []kernel.UUID) {
	if len(deliveryIDs) == 0 {
		return
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("begin transaction for reconciled marks failed", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	for _, id := range deliveryIDs {
		aggregate, err := deliveryRepo.Get(ctx, id)
		if err != nil {
			h.logger.Warn("loading delivery for reconciled mark failed",
				"deliveryId", id.String(), "error", err)
			continue
		}
		if aggregate.Reconciled() {
			continue
		}

		aggregate.MarkReconciled()
		if err = deliveryRepo.Update(ctx, aggregate); err != nil {
			h.logger.Warn("persisting reconciled mark failed",
				"deliveryId", id.String(), "error", err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		h.logger.Error("committing reconciled marks failed", "error", err)
	}
}
