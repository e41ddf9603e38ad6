package profile

import (
	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// Fields are the editable columns of a profile.
type Fields struct {
	Name              string `json:"name" validate:"required,max=255"`
	Bio               string `json:"bio"`
	Role              string `json:"role" validate:"max=255"`
	Location          string `json:"location" validate:"max=255"`
	ContactEmail      string `json:"contact_email" validate:"omitempty,email,max=255"`
	Phone             string `json:"phone" validate:"max=50"`
	LinkedIn          string `json:"linkedin" validate:"omitempty,url,max=255"`
	GitHub            string `json:"github" validate:"omitempty,url,max=255"`
	Facebook          string `json:"facebook" validate:"omitempty,url,max=255"`
	Photo             string `json:"photo" validate:"max=500"`
	YearsExperience   int    `json:"years_experience" validate:"min=0"`
	ProjectsCompleted int    `json:"projects_completed" validate:"min=0"`
}

// ------------------------------------------------------------

type CreateProfilePayload struct {
	Fields
}

func (p *CreateProfilePayload) RequiredMessage() string {
	return "Name is required"
}

func (p *CreateProfilePayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateProfilePayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	Fields
}

func (p *UpdateProfilePayload) Validate() error {
	return validation.Struct(p)
}
