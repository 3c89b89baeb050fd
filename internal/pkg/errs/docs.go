// Package errs provides standardized error types for the fleet resource engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the engine's full error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced identifier does not exist
//   - ObjectAlreadyExistsError: a uniqueness violation
//   - PreconditionFailedError: a resource is not in the state an operation requires
//   - InvalidStateError: a lifecycle transition is not allowed from the current state
//   - InvariantViolationError: an internal consistency check tripped
//   - TimeoutError: storage or a collaborator exceeded its time budget
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// This keeps error classification uniform: the HTTP adapter maps sentinels to
// status codes, and command handlers branch on errors.Is without string matching.
package errs
