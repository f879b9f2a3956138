// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - FieldsNotAllowedError: For when a request names fields the caller may not change
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a uniqueness constraint is violated
//   - AccessDeniedError: For authorization failures (unauthenticated, forbidden, masked)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Validation failures (required, invalid, out of range, fields not allowed) all
// unwrap to ErrValueIsInvalid's family so the transport layer can classify them
// with IsValidation.
package errs
