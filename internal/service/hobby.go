package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model/hobby"
	"github.com/labstack/echo/v4"
)

type HobbyRepository interface {
	ListHobbies(ctx context.Context, profileID int64, category hobby.Category) ([]hobby.Hobby, error)
	GetHobby(ctx context.Context, id int64) (*hobby.Hobby, error)
	CreateHobby(ctx context.Context, f hobby.Fields) (*hobby.Hobby, error)
	UpdateHobby(ctx context.Context, id int64, f hobby.Fields) (*hobby.Hobby, error)
	DeleteHobby(ctx context.Context, id int64) error
}

const hobbyNotFound = "Hobby not found"

type HobbyService struct {
	repo HobbyRepository
}

func NewHobbyService(repo HobbyRepository) *HobbyService {
	return &HobbyService{repo: repo}
}

// ListHobbies filters by profile and category; zero values mean no filter.
func (s *HobbyService) ListHobbies(c echo.Context, query *hobby.ListHobbiesQuery) ([]hobby.Hobby, error) {
	hobbies, err := s.repo.ListHobbies(c.Request().Context(), query.ProfileID, query.Category)
	if err != nil {
		return nil, repoError(c, err, hobbyNotFound, "list_hobbies")
	}
	return hobbies, nil
}

func (s *HobbyService) GetHobby(c echo.Context, id int64) (*hobby.Hobby, error) {
	h, err := s.repo.GetHobby(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, hobbyNotFound, "get_hobby")
	}
	return h, nil
}

func (s *HobbyService) CreateHobby(c echo.Context, payload *hobby.CreateHobbyPayload) (*hobby.Hobby, error) {
	h, err := s.repo.CreateHobby(c.Request().Context(), payload.Fields)
	if err != nil {
		return nil, repoError(c, err, hobbyNotFound, "create_hobby")
	}
	return h, nil
}

func (s *HobbyService) UpdateHobby(c echo.Context, payload *hobby.UpdateHobbyPayload) (*hobby.Hobby, error) {
	h, err := s.repo.UpdateHobby(c.Request().Context(), payload.ID, payload.Fields)
	if err != nil {
		return nil, repoError(c, err, hobbyNotFound, "update_hobby")
	}
	return h, nil
}

func (s *HobbyService) DeleteHobby(c echo.Context, id int64) error {
	if err := s.repo.DeleteHobby(c.Request().Context(), id); err != nil {
		return repoError(c, err, hobbyNotFound, "delete_hobby")
	}
	return nil
}
