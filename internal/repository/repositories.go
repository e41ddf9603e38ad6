package repository

import (
	"github.com/deppfellow/portfolio-backend/internal/server"
)

// Repositories groups one repository per table.
type Repositories struct {
	Profile   *ProfileRepository
	Skill     *SkillRepository
	Project   *ProjectRepository
	Education *EducationRepository
	Hobby     *HobbyRepository
	Contact   *ContactRepository
}

func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool

	return &Repositories{
		Profile:   NewProfileRepository(db),
		Skill:     NewSkillRepository(db),
		Project:   NewProjectRepository(db),
		Education: NewEducationRepository(db),
		Hobby:     NewHobbyRepository(db),
		Contact:   NewContactRepository(db),
	}
}
