package contact

import (
	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// SubmitContactPayload is the contact form. Status is always "new" on submit.
type SubmitContactPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (p *SubmitContactPayload) RequiredMessage() string {
	return "Name, email, and message are required"
}

func (p *SubmitContactPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateStatusPayload struct {
	ID     int64  `param:"id" json:"-" validate:"required,min=1"`
	Status Status `json:"status" validate:"required,oneof=new read replied"`
}

func (p *UpdateStatusPayload) RequiredMessage() string {
	return "Status is required"
}

func (p *UpdateStatusPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type ListContactsQuery struct {
	Status Status `query:"status" validate:"omitempty,oneof=new read replied"`
}

func (q *ListContactsQuery) Validate() error {
	return validation.Struct(q)
}
