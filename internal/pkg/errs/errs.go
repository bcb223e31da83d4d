package errs

import (
	"fmt"
	"strings"
)

// sanitize collapses control characters so error messages stay single-line
// when they end up in logs or HTTP responses.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

var ErrObjectNotFound = fmt.Errorf("object not found")

// ObjectNotFoundError reports that an entity could not be located by its
// identifier. No side effects have occurred when this error is returned.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

var ErrValueIsInvalid = fmt.Errorf("value is invalid")

// ValueIsInvalidError reports malformed input. It is always raised before any
// write, so the caller can safely retry with corrected data.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

var ErrValueIsRequired = fmt.Errorf("value is required")

// ValueIsRequiredError reports that a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

var ErrValueIsOutOfRange = fmt.Errorf("value is out of range")

// ValueIsOutOfRangeError reports a numeric value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

var ErrAccessDenied = fmt.Errorf("access denied")

// AccessDeniedError reports that the resolved caller scope does not permit an
// operation. The scope itself is evaluated by the external access collaborator;
// this error only surfaces its verdict.
type AccessDeniedError struct {
	CallerID string
	Action   string
	Cause    error
}

func NewAccessDeniedError(callerID, action string) *AccessDeniedError {
	return &AccessDeniedError{CallerID: callerID, Action: action}
}

func NewAccessDeniedErrorWithCause(callerID, action string, cause error) *AccessDeniedError {
	return &AccessDeniedError{CallerID: callerID, Action: action, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: caller is: %s, action is: %s (cause: %s)",
			ErrAccessDenied, sanitize(e.CallerID), e.Action, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Action)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

var ErrVerificationFailed = fmt.Errorf("verification failed")

// VerificationFailedError reports a failed or timed-out call to the external
// invoice ledger. It is degraded, per-item, and never fatal to a batch.
type VerificationFailedError struct {
	InvoiceReference string
	Cause            error
}

func NewVerificationFailedError(invoiceReference string) *VerificationFailedError {
	return &VerificationFailedError{InvoiceReference: invoiceReference}
}

func NewVerificationFailedErrorWithCause(invoiceReference string, cause error) *VerificationFailedError {
	return &VerificationFailedError{InvoiceReference: invoiceReference, Cause: cause}
}

func (e *VerificationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVerificationFailed, sanitize(e.InvoiceReference), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrVerificationFailed, sanitize(e.InvoiceReference))
}

func (e *VerificationFailedError) Unwrap() error {
	return ErrVerificationFailed
}
