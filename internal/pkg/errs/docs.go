// Package errs provides standardized error types for the admin console backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is classification
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// The HTTP adapter relies on these sentinels to map failures to status codes:
// ErrObjectNotFound becomes 404 and ErrVersionIsInvalid (an optimistic-concurrency
// conflict) becomes 409, while domain rule violations map to 400.
package errs
