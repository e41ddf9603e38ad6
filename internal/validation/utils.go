// Package validation binds and validates request payloads.
//
// Rules live in `validate` struct tags (go-playground/validator); rules that
// tags cannot express are returned as CustomValidationErrors from a payload's
// Validate method. Both are converted into field-level errors for the client.
package validation
