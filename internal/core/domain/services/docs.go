// Package services contains stateless domain services of the procurement core.
//
// OrderStatusPolicy holds the single source of truth for deriving an order's
// status from the deliveries referencing it; application-layer lifecycle
// recomputation feeds it fresh counts inside the same transaction that writes
// the derived status back.
package services
