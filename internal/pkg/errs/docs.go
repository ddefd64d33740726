// Package errs provides standardized error types for the logistics core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value violates a constraint
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when a referenced entity cannot be found
//   - ConflictError: For when a resource is already held or linked
//   - FatalInconsistencyError: For invariant violations the system itself
//     should have prevented; never user-recoverable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels map onto the failure kinds surfaced by the operation
// contracts: validation failures (required/invalid/out of range),
// conflicts, not-found references, and fatal inconsistencies.
package errs
