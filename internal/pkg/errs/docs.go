// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the core:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//     (see IsInvalidArgument)
//   - InvalidStateError: an operation not permitted in the current lifecycle state
//   - ObjectNotFoundError: a lookup by identifier or hash yields nothing
//   - UnauthenticatedError: credential or token verification failure
//   - PersistenceFailureError: the store rejected a write, e.g. a unique violation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain and application code return these errors unchanged; only the HTTP boundary
// translates them into responses.
package errs
