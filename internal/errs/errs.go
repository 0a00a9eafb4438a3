// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for API responses)
// so clients receive meaningful, actionable and consistent
// error messages.
package errs
