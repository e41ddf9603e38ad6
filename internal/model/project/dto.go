package project

import (
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/validation"
)

// Fields are the editable columns. Tags is a comma-separated list ("go,postgres").
type Fields struct {
	ProfileID    int64  `json:"profile_id" validate:"required,min=1"`
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	Link         string `json:"link" validate:"omitempty,url,max=500"`
	Image        string `json:"image" validate:"max=500"`
	Tags         string `json:"tags" validate:"max=500"`
	DisplayOrder int    `json:"display_order"`
}

// ------------------------------------------------------------

type CreateProjectPayload struct {
	Fields
}

func (p *CreateProjectPayload) RequiredMessage() string {
	return "Title and profile_id are required"
}

func (p *CreateProjectPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateProjectPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	Fields
}

func (p *UpdateProjectPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type ListProjectsQuery struct {
	ProfileID int64 `query:"profile_id" validate:"min=0"`
}

func (q *ListProjectsQuery) Validate() error {
	return validation.Struct(q)
}

// ------------------------------------------------------------

// SearchProjectsQuery matches Tag as a case-insensitive substring of the project tags.
// Tag is trimmed before validation, so a blank tag is rejected as missing.
type SearchProjectsQuery struct {
	ProfileID int64  `query:"profile_id" validate:"required,min=1"`
	Tag       string `query:"tag" validate:"required,max=100"`
}

func (q *SearchProjectsQuery) Validate() error {
	q.Tag = strings.TrimSpace(q.Tag)
	return validation.Struct(q)
}
