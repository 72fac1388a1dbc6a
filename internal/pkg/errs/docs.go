// Package errs provides standardized error types for the operations console.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the core error taxonomy:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - AccessForbiddenError: the caller lacks ownership or role for an operation
//   - InvalidOrderTransitionError: a status change not present in the transition table
//   - OrderStateError: an edit or delete attempted in a disallowed status
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ConflictError: a uniqueness violation such as a duplicate email
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach keeps error classification uniform across the
// domain, application, and transport layers.
package errs
