package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/deppfellow/portfolio-backend/static"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Profile   *ProfileHandler
	Skill     *SkillHandler
	Project   *ProjectHandler
	Education *EducationHandler
	Hobby     *HobbyHandler
	Contact   *ContactHandler
	Action    *ActionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s, static.FS),
		Profile:   NewProfileHandler(s, services.Profile),
		Skill:     NewSkillHandler(s, services.Skill),
		Project:   NewProjectHandler(s, services.Project),
		Education: NewEducationHandler(s, services.Education),
		Hobby:     NewHobbyHandler(s, services.Hobby),
		Contact:   NewContactHandler(s, services.Contact),
	}
	h.Action = NewActionHandler(s, h.Profile, h.Skill, h.Project, h.Education, h.Hobby, h.Contact)
	return h
}
