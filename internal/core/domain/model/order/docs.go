// Package order contains the Order aggregate of the procurement domain.
//
// An Order is a planned procurement request placed with a supplier for a store.
// Its status is never advanced incrementally: the lifecycle recomputation
// derives it fresh from the set of deliveries currently referencing the order,
// so Pending, Planned, and Delivered stay consistent with reality even when
// deliveries are created, validated, unlinked, or deleted concurrently.
package order
