// Package lib holds modules that do not fit strictly into other layers.
//
// It contains the operator email client (Resend, AWS SES or a logging
// transport) and the Redis-backed rate-limit store.
package lib
