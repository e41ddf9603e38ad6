// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is (or is converted into) an
// *HTTPError, which carries the status code, a stable machine-readable code
// and optional field-level validation errors.
package errs
