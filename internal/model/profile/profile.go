package profile

import "time"

// Profile is the portfolio owner. Every other resource except contacts hangs off one.
type Profile struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Bio               string    `json:"bio"`
	Role              string    `json:"role"`
	Location          string    `json:"location"`
	ContactEmail      string    `json:"contact_email"`
	Phone             string    `json:"phone"`
	LinkedIn          string    `json:"linkedin"`
	GitHub            string    `json:"github"`
	Facebook          string    `json:"facebook"`
	Photo             string    `json:"photo"`
	YearsExperience   int       `json:"years_experience"`
	ProjectsCompleted int       `json:"projects_completed"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Summary is a profile with counts and the average skill proficiency.
type Summary struct {
	Profile
	TotalSkills         int64   `json:"total_skills"`
	TotalProjects       int64   `json:"total_projects"`
	TotalEducation      int64   `json:"total_education"`
	TotalHobbies        int64   `json:"total_hobbies"`
	AvgSkillProficiency float64 `json:"avg_skill_proficiency"`
}
