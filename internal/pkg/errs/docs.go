// Package errs provides the standardized error types shared by the workflow service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ObjectNotFoundError: a referenced object does not exist
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels and read details
// with errors.As against the struct types.
package errs
