// Package verificationrepo implements the invoice verification cache over
// GORM. One row per (store, invoice reference) key; invalidation marks rows
// stale instead of deleting them, which keeps the verification history
// inspectable.
package verificationrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/verification"

	"github.com/google/uuid"
)

// CacheEntryDTO represents the database structure for one cached verification
// result. The exists flag is stored as ref_exists because "exists" is a
// reserved word in Postgres.
type CacheEntryDTO struct {
	StoreID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceReference string    `gorm:"primaryKey;index"`
	RefExists        bool      `gorm:"column:ref_exists"`
	MatchType        string
	SupplierName     string
	IsValid          bool
	VerifiedAt       time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming convention.
func (CacheEntryDTO) TableName() string {
	return "verification_cache"
}

// fromDomain converts a cache entry to its database representation.
func fromDomain(entry *verification.CacheEntry) CacheEntryDTO {
	return CacheEntryDTO{
		StoreID:          entry.StoreID().Bytes(),
		InvoiceReference: entry.InvoiceReference(),
		RefExists:        entry.Exists(),
		MatchType:        entry.MatchType().String(),
		SupplierName:     entry.SupplierName(),
		IsValid:          entry.IsValid(),
		VerifiedAt:       entry.VerifiedAt(),
	}
}

// toDomain reconstructs the cache entry from a database row.
func toDomain(dto CacheEntryDTO) (*verification.CacheEntry, error) {
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	matchType, err := verification.ParseMatchType(dto.MatchType)
	if err != nil {
		return nil, err
	}

	return verification.RestoreCacheEntry(
		storeID, dto.InvoiceReference,
		dto.RefExists, matchType,
		dto.SupplierName, dto.IsValid, dto.VerifiedAt,
	)
}
