package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/project"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	Handler
	projectService *service.ProjectService
}

func NewProjectHandler(s *server.Server, projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        NewHandler(s),
		projectService: projectService,
	}
}

func (h *ProjectHandler) ListProjects(c echo.Context, req *project.ListProjectsQuery) (model.Envelope, error) {
	projects, err := h.projectService.ListProjects(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(projects), nil
}

func (h *ProjectHandler) GetProject(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	p, err := h.projectService.GetProject(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(p), nil
}

func (h *ProjectHandler) CreateProject(c echo.Context, req *project.CreateProjectPayload) (model.Envelope, error) {
	p, err := h.projectService.CreateProject(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Created("Project", p.ID, p), nil
}

func (h *ProjectHandler) UpdateProject(c echo.Context, req *project.UpdateProjectPayload) (model.Envelope, error) {
	p, err := h.projectService.UpdateProject(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated("Project", p), nil
}

func (h *ProjectHandler) DeleteProject(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.projectService.DeleteProject(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted("Project"), nil
}

func (h *ProjectHandler) SearchProjects(c echo.Context, req *project.SearchProjectsQuery) (model.Envelope, error) {
	projects, err := h.projectService.SearchProjectsByTag(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(projects), nil
}
