package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model/education"
	"github.com/labstack/echo/v4"
)

type EducationRepository interface {
	ListEducation(ctx context.Context, profileID int64) ([]education.Education, error)
	GetEducation(ctx context.Context, id int64) (*education.Education, error)
	CreateEducation(ctx context.Context, f education.Fields) (*education.Education, error)
	UpdateEducation(ctx context.Context, id int64, f education.Fields) (*education.Education, error)
	DeleteEducation(ctx context.Context, id int64) error
}

const educationNotFound = "Education record not found"

type EducationService struct {
	repo EducationRepository
}

func NewEducationService(repo EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

func (s *EducationService) ListEducation(c echo.Context, query *education.ListEducationQuery) ([]education.Education, error) {
	records, err := s.repo.ListEducation(c.Request().Context(), query.ProfileID)
	if err != nil {
		return nil, repoError(c, err, educationNotFound, "list_education")
	}
	return records, nil
}

func (s *EducationService) GetEducation(c echo.Context, id int64) (*education.Education, error) {
	e, err := s.repo.GetEducation(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, educationNotFound, "get_education")
	}
	return e, nil
}

func (s *EducationService) CreateEducation(c echo.Context, payload *education.CreateEducationPayload) (*education.Education, error) {
	e, err := s.repo.CreateEducation(c.Request().Context(), payload.Fields)
	if err != nil {
		return nil, repoError(c, err, educationNotFound, "create_education")
	}
	return e, nil
}

func (s *EducationService) UpdateEducation(c echo.Context, payload *education.UpdateEducationPayload) (*education.Education, error) {
	e, err := s.repo.UpdateEducation(c.Request().Context(), payload.ID, payload.Fields)
	if err != nil {
		return nil, repoError(c, err, educationNotFound, "update_education")
	}
	return e, nil
}

func (s *EducationService) DeleteEducation(c echo.Context, id int64) error {
	if err := s.repo.DeleteEducation(c.Request().Context(), id); err != nil {
		return repoError(c, err, educationNotFound, "delete_education")
	}
	return nil
}
