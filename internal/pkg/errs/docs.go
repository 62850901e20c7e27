// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error kinds the order workflow distinguishes:
//   - ObjectNotFoundError: a referenced record does not exist
//   - InvalidStateError: an operation attempted from a status that does not permit it
//   - InsufficientStockError: a reservation exceeds the available quantity
//   - ValueIsRequiredError / ValueIsInvalidError: malformed value objects
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
