package skill

import "time"

type Skill struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	Type        string    `json:"type"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

// TypeStats aggregates the skills of one profile sharing a type.
type TypeStats struct {
	Type           string  `json:"type"`
	SkillCount     int64   `json:"skill_count"`
	AvgProficiency float64 `json:"avg_proficiency"`
	MaxProficiency int     `json:"max_proficiency"`
	MinProficiency int     `json:"min_proficiency"`
}

// DefaultMinProficiency is the threshold used when a top-skills query gives none.
const DefaultMinProficiency = 70
