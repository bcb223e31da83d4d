// Package redis provides a Redis-backed implementation of the invoice
// verification cache. It is a drop-in alternative to the Postgres one for
// deployments where several instances share verification results; the data is
// always rebuildable from the external ledger, so losing it costs only extra
// verifier calls.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"

	"github.com/redis/go-redis/v9"
)

const (
	// verificationKeyPrefix namespaces cache keys: verification:{storeId}:{reference}.
	verificationKeyPrefix = "verification:"

	// invalidateScanCount bounds how many keys one SCAN iteration inspects.
	invalidateScanCount = 256
)

// cachedResult is the JSON document stored per key. Invalidation deletes the
// key rather than flipping a flag: an absent key already reads as a miss.
type cachedResult struct {
	Exists       bool      `json:"exists"`
	MatchType    string    `json:"matchType"`
	SupplierName string    `json:"supplierName"`
	VerifiedAt   time.Time `json:"verifiedAt"`
}

// VerificationCache implements the cache port over a Redis client.
type VerificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerificationCache creates a Redis verification cache. ttl of zero keeps
// entries until an operator invalidates them.
func NewVerificationCache(client *redis.Client, ttl time.Duration) *VerificationCache {
	return &VerificationCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(storeID kernel.UUID, invoiceReference string) string {
	return verificationKeyPrefix + storeID.String() + ":" + invoiceReference
}

// Lookup returns the cached entry for the key, or (nil, nil) on a miss.
func (c *VerificationCache) Lookup(
	ctx context.Context,
	storeID kernel.UUID,
	invoiceReference string,
) (*verification.CacheEntry, error) {
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, cacheKey(storeID, invoiceReference)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil //nolint:nilnil //a miss is a valid outcome, not an error
	}
	if err != nil {
		return nil, err
	}

	var doc cachedResult
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	matchType, err := verification.ParseMatchType(doc.MatchType)
	if err != nil {
		return nil, err
	}

	return verification.RestoreCacheEntry(
		storeID, invoiceReference,
		doc.Exists, matchType,
		doc.SupplierName, true, doc.VerifiedAt,
	)
}

// Store upserts the entry for its key. Redis SET is last-write-wins, which is
// exactly the contract concurrent verifications need.
func (c *VerificationCache) Store(ctx context.Context, entry *verification.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	doc := cachedResult{
		Exists:       entry.Exists(),
		MatchType:    entry.MatchType().String(),
		SupplierName: entry.SupplierName(),
		VerifiedAt:   entry.VerifiedAt(),
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(entry.StoreID(), entry.InvoiceReference()), raw, c.ttl).Err()
}

// Invalidate removes every key carrying the invoice reference, across all
// stores. SCAN keeps the sweep incremental instead of blocking the server the
// way KEYS would.
func (c *VerificationCache) Invalidate(ctx context.Context, invoiceReference string) (int64, error) {
	pattern := verificationKeyPrefix + "*:" + invoiceReference

	var invalidated int64
	iter := c.client.Scan(ctx, 0, pattern, invalidateScanCount).Iterator()
	for iter.Next(ctx) {
		deleted, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return invalidated, err
		}
		invalidated += deleted
	}
	if err := iter.Err(); err != nil {
		return invalidated, err
	}

	return invalidated, nil
}
