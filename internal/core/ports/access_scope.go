package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// AccessScope is the external access-control collaborator. The core never
// evaluates roles itself: the HTTP boundary consults this interface before any
// core call and hands the core pre-filtered store identifiers only.
type AccessScope interface {
	// VisibleStores returns the store identifiers the caller may act on.
	VisibleStores(ctx context.Context, callerID kernel.UUID) ([]kernel.UUID, error)

	// IsElevated reports whether the caller holds an elevated role.
	// Devalidation and cache invalidation are restricted to elevated callers.
	IsElevated(ctx context.Context, callerID kernel.UUID) (bool, error)
}
