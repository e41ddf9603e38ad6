package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/model/project"
	"github.com/labstack/echo/v4"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context, profileID int64) ([]project.Project, error)
	GetProject(ctx context.Context, id int64) (*project.Project, error)
	CreateProject(ctx context.Context, f project.Fields) (*project.Project, error)
	UpdateProject(ctx context.Context, id int64, f project.Fields) (*project.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	SearchByTag(ctx context.Context, profileID int64, tag string) ([]project.Project, error)
}

const projectNotFound = "Project not found"

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) ListProjects(c echo.Context, query *project.ListProjectsQuery) ([]project.Project, error) {
	projects, err := s.repo.ListProjects(c.Request().Context(), query.ProfileID)
	if err != nil {
		return nil, repoError(c, err, projectNotFound, "list_projects")
	}
	return projects, nil
}

func (s *ProjectService) GetProject(c echo.Context, id int64) (*project.Project, error) {
	p, err := s.repo.GetProject(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, projectNotFound, "get_project")
	}
	return p, nil
}

func (s *ProjectService) CreateProject(c echo.Context, payload *project.CreateProjectPayload) (*project.Project, error) {
	p, err := s.repo.CreateProject(c.Request().Context(), payload.Fields)
	if err != nil {
		return nil, repoError(c, err, projectNotFound, "create_project")
	}

	middleware.GetLogger(c).Info().
		Int64("project_id", p.ID).
		Int64("profile_id", p.ProfileID).
		Msg("project created")

	return p, nil
}

func (s *ProjectService) UpdateProject(c echo.Context, payload *project.UpdateProjectPayload) (*project.Project, error) {
	p, err := s.repo.UpdateProject(c.Request().Context(), payload.ID, payload.Fields)
	if err != nil {
		return nil, repoError(c, err, projectNotFound, "update_project")
	}
	return p, nil
}

func (s *ProjectService) DeleteProject(c echo.Context, id int64) error {
	if err := s.repo.DeleteProject(c.Request().Context(), id); err != nil {
		return repoError(c, err, projectNotFound, "delete_project")
	}
	return nil
}

// SearchProjectsByTag matches the tag anywhere in the comma-separated tags, ignoring case.
func (s *ProjectService) SearchProjectsByTag(c echo.Context, query *project.SearchProjectsQuery) ([]project.Project, error) {
	projects, err := s.repo.SearchByTag(c.Request().Context(), query.ProfileID, query.Tag)
	if err != nil {
		return nil, repoError(c, err, projectNotFound, "search_projects")
	}
	return projects, nil
}
