package delivery

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Planned ──> Delivered
//	               │
//	               └──> Delivered (re-validation refreshes dates)
//
// Devalidation deliberately does NOT revert Delivered back to Planned; it only
// clears the reconciled flag on the delivery (see DevalidateDeliveryCommand).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status of a delivery awaiting physical receipt.
	Planned

	// Delivered indicates the delivery was validated against its delivery note.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Planned:   "planned",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "planned",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Planned, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
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
