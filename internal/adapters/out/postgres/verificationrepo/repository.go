package verificationrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVerificationCache implements VerificationCache using GORM.
// Store is an idempotent upsert, last write wins; Invalidate marks every row
// carrying the reference stale across all stores.
type GormVerificationCache struct {
	db *gorm.DB
}

// NewGormVerificationCache creates a new GORM verification cache.
func NewGormVerificationCache(db *gorm.DB) *GormVerificationCache {
	return &GormVerificationCache{db: db}
}

// Lookup returns the cached entry for the key. Missing and invalidated rows
// both return (nil, nil): only a valid row is a hit.
func (c *GormVerificationCache) Lookup(
	ctx context.Context,
	storeID kernel.UUID,
	invoiceReference string,
) (*verification.CacheEntry, error) {
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	var dto CacheEntryDTO
	err := c.db.WithContext(ctx).
		First(&dto, "store_id = ? AND invoice_reference = ?", storeID.Bytes(), invoiceReference).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //a miss is a valid outcome, not an error
		}
		return nil, err
	}

	if !dto.IsValid {
		return nil, nil //nolint:nilnil //stale rows count as misses
	}

	return toDomain(dto)
}

// Store upserts the entry for its (store, reference) key and marks it valid.
// Concurrent stores for the same key are safe: the conflict clause makes the
// last write win without erroring on duplicates.
func (c *GormVerificationCache) Store(ctx context.Context, entry *verification.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "invoice_reference"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"ref_exists", "match_type", "supplier_name", "is_valid", "verified_at",
			}),
		}).
		Create(&dto).
		Error
}

// Invalidate marks every entry carrying the invoice reference stale, across
// all stores sharing it. Returns how many rows were affected.
func (c *GormVerificationCache) Invalidate(ctx context.Context, invoiceReference string) (int64, error) {
	result := c.db.WithContext(ctx).
		Model(&CacheEntryDTO{}).
		Where("invoice_reference = ? AND is_valid = true", invoiceReference).
		Update("is_valid", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
