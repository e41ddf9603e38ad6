// Package model holds the response envelope and payloads shared by every
// resource. Resource entities and their request payloads live in the
// per-resource subpackages.
package model

import (
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// Envelope is the body of every response.
//
//	{ "success": true, "data": [...] }
//	{ "success": true, "message": "Skill added successfully", "id": 7, "data": {...} }
//	{ "success": false, "message": "Skill not found", "code": "NOT_FOUND" }
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	ID      *int64            `json:"id,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Created reports a new row, e.g. "Project added successfully".
func Created(resource string, id int64, data any) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: fmt.Sprintf("%s added successfully", resource),
		ID:      &id,
	}
}

func Updated(resource string, data any) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: fmt.Sprintf("%s updated successfully", resource),
	}
}

func Deleted(resource string) Envelope {
	return Envelope{
		Success: true,
		Message: fmt.Sprintf("%s deleted successfully", resource),
	}
}

// Failure renders an error as an envelope.
func Failure(err *errs.HTTPError) Envelope {
	return Envelope{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
		Errors:  err.Errors,
	}
}

// IDPayload addresses a single row by its path (or ?id=) parameter.
type IDPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (p *IDPayload) Validate() error {
	return validation.Struct(p)
}

// NoPayload is the request of endpoints that take no input.
type NoPayload struct{}

func (p *NoPayload) Validate() error {
	return nil
}
