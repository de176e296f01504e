// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error category follows the same shape:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The categories mirror the failure taxonomy of the order lifecycle:
//   - ObjectNotFoundError: object absent, or present but not owned by the actor
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     payload validation failures
//   - ConflictError: a status precondition that no longer holds at write time
//   - ForbiddenError: wrong role or failed domain precondition
//
// All errors propagate as typed values; nothing in the core panics or throws
// across the state-machine boundary. The HTTP adapter maps each sentinel to a
// response status.
package errs
