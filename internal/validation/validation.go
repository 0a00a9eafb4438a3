// Package validation contains the logic for validating
// and sanitizing request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags,
// extracts validation errors into a format the client can
// understand, and escapes markup-sensitive characters before
// user input is persisted.
package validation
