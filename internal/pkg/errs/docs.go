// Package errs provides standardized error types for the marketplace engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: unknown order, courier, prize or grant
//   - ConflictError: a request that does not fit the current state (illegal transition, terminal edit)
//   - ForbiddenError: an actor acting outside its scope
//   - BundleRollbackError: a checkout whose child orders were all rolled back
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is / errors.As support
//
// Transport adapters classify failures by sentinel only, so new error types must
// unwrap to one of the sentinels above.
package errs
