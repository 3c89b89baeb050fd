package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's error taxonomy. Callers classify failures
// with errors.Is against these values; the concrete error types below carry
// the details.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrInvalidState        = errors.New("state transition is invalid")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrTimeout             = errors.New("operation timed out")
)

// sanitize flattens control characters so error messages stay single-line
// in logs regardless of what value tripped the check.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates a mandatory value was missing.
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
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but malformed.
// Surfaced to callers verbatim and never retried.
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
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed range.
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

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced identifier does not exist.
// Surfaced as HTTP 404.
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
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates a uniqueness violation: the value of
// ParamName is already taken by another record. Surfaced as HTTP 409.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// PreconditionFailedError indicates a resource was not in the state the
// requested operation needs. Names the offending resource and its current
// state so the caller can see exactly what blocked the operation.
type PreconditionFailedError struct {
	Resource string
	ID       string
	State    string
	Cause    error
}

func NewPreconditionFailedError(resource, id, state string) *PreconditionFailedError {
	return &PreconditionFailedError{Resource: resource, ID: id, State: state}
}

func NewPreconditionFailedErrorWithCause(resource, id, state string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Resource: resource, ID: id, State: state, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s is %s (cause: %s)", ErrPreconditionFailed, e.Resource, e.ID, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s is %s", ErrPreconditionFailed, e.Resource, e.ID, e.State)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// InvalidStateError indicates an operation hit an object whose lifecycle
// state does not admit the requested transition, e.g. terminating an
// assignment that is no longer active.
type InvalidStateError struct {
	Object string
	State  string
	Cause  error
}

func NewInvalidStateError(object, state string) *InvalidStateError {
	return &InvalidStateError{Object: object, State: state}
}

func NewInvalidStateErrorWithCause(object, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Object: object, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s (cause: %s)", ErrInvalidState, e.Object, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.Object, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvariantViolationError indicates an internal consistency check tripped.
// Should be unreachable when all writes go through the coordinator; logged at
// high severity and surfaced as HTTP 500, never silently corrected.
type InvariantViolationError struct {
	Details string
	Cause   error
}

func NewInvariantViolationError(details string) *InvariantViolationError {
	return &InvariantViolationError{Details: details}
}

func NewInvariantViolationErrorWithCause(details string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Details: details, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantViolation, e.Details, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Details)
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

// TimeoutError indicates storage or a collaborator did not answer within
// budget. The operation was rolled back, so retrying the whole request is safe.
type TimeoutError struct {
	Operation string
	Cause     error
}

func NewTimeoutError(operation string) *TimeoutError {
	return &TimeoutError{Operation: operation}
}

func NewTimeoutErrorWithCause(operation string, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Cause: cause}
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrTimeout, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTimeout, e.Operation)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}
