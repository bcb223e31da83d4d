// Package errs provides standardized error types for the procurement application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the reconciliation core:
//   - ObjectNotFoundError: an order or delivery identifier is unknown
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed input, rejected before any write
//   - AccessDeniedError: the caller's resolved scope forbids an operation
//   - VerificationFailedError: the external invoice ledger failed or timed out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which keeps
// HTTP status mapping and batch degradation logic free of type switches.
package errs
