// Package accessctl provides a statically configured implementation of the
// access scope collaborator. Role evaluation lives in the surrounding user
// management system; this adapter only replays the scope it was configured
// with, which is enough for single-tenant deployments and for tests.
package accessctl

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"
)

// StaticScope implements ports.AccessScope from fixed assignments.
type StaticScope struct {
	defaultStores []kernel.UUID
	storesByUser  map[kernel.UUID][]kernel.UUID
	elevated      map[kernel.UUID]bool
}

var _ ports.AccessScope = (*StaticScope)(nil)

// NewStaticScope creates a scope where every caller sees defaultStores unless
// an explicit assignment overrides it.
func NewStaticScope(defaultStores []kernel.UUID) *StaticScope {
	return &StaticScope{
		defaultStores: defaultStores,
		storesByUser:  make(map[kernel.UUID][]kernel.UUID),
		elevated:      make(map[kernel.UUID]bool),
	}
}

// AssignStores restricts a caller to the given stores.
func (s *StaticScope) AssignStores(callerID kernel.UUID, storeIDs []kernel.UUID) {
	s.storesByUser[callerID] = storeIDs
}

// Elevate grants a caller the elevated role.
func (s *StaticScope) Elevate(callerID kernel.UUID) {
	s.elevated[callerID] = true
}

// VisibleStores returns the store identifiers the caller may act on.
func (s *StaticScope) VisibleStores(_ context.Context, callerID kernel.UUID) ([]kernel.UUID, error) {
	if err := callerID.Validate(); err != nil {
		return nil, err
	}

	if stores, ok := s.storesByUser[callerID]; ok {
		return stores, nil
	}
	return s.defaultStores, nil
}

// IsElevated reports whether the caller holds the elevated role.
func (s *StaticScope) IsElevated(_ context.Context, callerID kernel.UUID) (bool, error) {
	if err := callerID.Validate(); err != nil {
		return false, err
	}
	return s.elevated[callerID], nil
}
