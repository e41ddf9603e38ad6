package skill

import (
	"strconv"

	"github.com/deppfellow/portfolio-backend/internal/validation"
)

type Fields struct {
	ProfileID   int64  `json:"profile_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,max=100"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=100"`
	Type        string `json:"type" validate:"max=50"`
	Icon        string `json:"icon" validate:"max=255"`
}

// ------------------------------------------------------------

type CreateSkillPayload struct {
	Fields
}

func (p *CreateSkillPayload) RequiredMessage() string {
	return "Name and profile_id are required"
}

func (p *CreateSkillPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type UpdateSkillPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	Fields
}

func (p *UpdateSkillPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// ListSkillsQuery lists skills of one profile, or of every profile when ProfileID is 0.
type ListSkillsQuery struct {
	ProfileID int64 `query:"profile_id" validate:"min=0"`
}

func (q *ListSkillsQuery) Validate() error {
	return validation.Struct(q)
}

// ------------------------------------------------------------

type SkillsByTypeQuery struct {
	ProfileID int64 `query:"profile_id" validate:"required,min=1"`
}

func (q *SkillsByTypeQuery) Validate() error {
	return validation.Struct(q)
}

// ------------------------------------------------------------

// TopSkillsQuery selects skills at or above Min. An empty Min means DefaultMinProficiency.
type TopSkillsQuery struct {
	ProfileID int64  `query:"profile_id" validate:"required,min=1"`
	Min       string `query:"min"`
}

func (q *TopSkillsQuery) Validate() error {
	if err := validation.Struct(q); err != nil {
		return err
	}

	if q.Min == "" {
		return nil
	}

	threshold, err := strconv.Atoi(q.Min)
	if err != nil {
		return validation.CustomValidationErrors{{Field: "min", Message: "must be a whole number"}}
	}
	if threshold < 0 || threshold > 100 {
		return validation.CustomValidationErrors{{Field: "min", Message: "must be between 0 and 100"}}
	}
	return nil
}

// Threshold returns the parsed Min. Call it after Validate.
func (q *TopSkillsQuery) Threshold() int {
	if q.Min == "" {
		return DefaultMinProficiency
	}
	threshold, err := strconv.Atoi(q.Min)
	if err != nil {
		return DefaultMinProficiency
	}
	return threshold
}
