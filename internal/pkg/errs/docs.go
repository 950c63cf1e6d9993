// Package errs provides the typed errors shared by the task wizard.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is not acceptable
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds (e.g. a stop index)
//   - ObjectNotFoundError: an object cannot be found (e.g. a draft session or a stop)
//   - ConflictError: an operation the current state does not allow (e.g. a second submission)
//
// Each error type unwraps to a sentinel (e.g. ErrValueIsRequired), so callers classify
// errors with errors.Is and read details with errors.As. KindOf maps any error onto the
// coarse Kind adapters respond with.
package errs
