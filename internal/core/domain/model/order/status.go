package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a procurement order.
// Unlike a classic incremental state machine, an order's status is always
// re-derived from the full set of deliveries that currently reference it:
//
//	zero linked deliveries                      -> Pending
//	linked deliveries, none of them delivered   -> Planned
//	at least one linked delivery delivered      -> Delivered
//
// Because derivation is evaluated fresh on every recomputation, any status can
// follow any other (a Delivered order reverts to Pending when its last delivery
// is unlinked).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of an order no delivery references.
	Pending

	// Planned is the status of an order with linked deliveries, none of which
	// has been delivered yet.
	Planned

	// Delivered is the status of an order with at least one delivered delivery.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Planned:   "planned",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Planned:   "planned",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Planned, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
