package hobby

import (
	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// Fields are the editable columns. An empty Category is stored as CategoryHobby.
type Fields struct {
	ProfileID   int64    `json:"profile_id" validate:"required,min=1"`
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Icon        string   `json:"icon" validate:"max=255"`
	Category    Category `json:"category" validate:"omitempty,oneof=hobby tool"`
}

// CategoryOrDefault returns the category to store.
func (f *Fields) CategoryOrDefault() Category {
	if f.Category == "" {
		return CategoryHobby
	}
	return f.Category
}

// ------------------------------------------------------------

type CreateHobbyPayload struct {
	Fields
}

func (p *CreateHobbyPayload) RequiredMessage() string {
	return "Name and profile_id are required"
}

func (p *CreateHobbyPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateHobbyPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	Fields
}

func (p *UpdateHobbyPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// ListHobbiesQuery filters are optional and combined with AND.
type ListHobbiesQuery struct {
	ProfileID int64    `query:"profile_id" validate:"min=0"`
	Category  Category `query:"category" validate:"omitempty,oneof=hobby tool"`
}

func (q *ListHobbiesQuery) Validate() error {
	return validation.Struct(q)
}
