// Package errs provides standardized error types for the store application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value was never set
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - QuantityIsInvalidError: For stock changes that would go negative
//   - CapacityExceededError and ContentMismatchError: For vehicle cargo violations
//   - InsufficientStockError: For sales that remove more units than are held
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// On top of the sentinels, Kind is a closed enumeration of the domain error
// categories. KindOf classifies any error (including joined or wrapped ones)
// so that adapters can map failures without knowing the concrete types.
package errs
