package education

import "time"

// Education is one entry of the education timeline. A nil EndYear means ongoing.
type Education struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        string    `json:"field"`
	StartYear    int       `json:"start_year"`
	EndYear      *int      `json:"end_year"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
