package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// ClearVerificationCacheCommandHandler handles operator-forced cache
// invalidation. The next verification for the reference will miss and hit
// the external ledger again.
type ClearVerificationCacheCommandHandler struct {
	cache ports.VerificationCache
}

// NewClearVerificationCacheCommandHandler creates a handler for cache invalidation operations.
func NewClearVerificationCacheCommandHandler(cache ports.VerificationCache) ClearVerificationCacheCommandHandler {
	return ClearVerificationCacheCommandHandler{
		cache: cache,
	}
}

// Handle processes the invalidation command and returns how many entries
// were invalidated.
func (h *ClearVerificationCacheCommandHandler) Handle(
	ctx context.Context,
	cmd ClearVerificationCacheCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.cache.Invalidate(ctx, cmd.InvoiceReference())
}
