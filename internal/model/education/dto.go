package education

import (
	"github.com/deppfellow/portfolio-backend/internal/validation"
)

type Fields struct {
	ProfileID    int64  `json:"profile_id" validate:"required,min=1"`
	Institution  string `json:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" validate:"max=200"`
	Field        string `json:"field" validate:"max=200"`
	StartYear    int    `json:"start_year" validate:"omitempty,min=1900,max=2100"`
	EndYear      *int   `json:"end_year" validate:"omitempty,min=1900,max=2100"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func (f *Fields) validateYears() error {
	if f.StartYear != 0 && f.EndYear != nil && *f.EndYear < f.StartYear {
		return validation.CustomValidationErrors{
			{Field: "end_year", Message: "must not be before start_year"},
		}
	}
	return nil
}

// ------------------------------------------------------------

type CreateEducationPayload struct {
	Fields
}

func (p *CreateEducationPayload) RequiredMessage() string {
	return "Institution and profile_id are required"
}

func (p *CreateEducationPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return p.validateYears()
}

// ------------------------------------------------------------

type UpdateEducationPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	Fields
}

func (p *UpdateEducationPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return p.validateYears()
}

// ------------------------------------------------------------

type ListEducationQuery struct {
	ProfileID int64 `query:"profile_id" validate:"min=0"`
}

func (q *ListEducationQuery) Validate() error {
	return validation.Struct(q)
}
