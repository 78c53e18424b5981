// Package validation provides input validation helpers.
//
// Struct validates a struct against its `validate` tags and returns a
// typed *errors.AppError with per-field details. NonEmpty guards single
// string arguments, rejecting empty or whitespace-only values.
package validation
