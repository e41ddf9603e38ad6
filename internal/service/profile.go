package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/model/profile"
	"github.com/labstack/echo/v4"
)

type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]profile.Profile, error)
	GetProfile(ctx context.Context, id int64) (*profile.Profile, error)
	CreateProfile(ctx context.Context, f profile.Fields) (*profile.Profile, error)
	UpdateProfile(ctx context.Context, id int64, f profile.Fields) (*profile.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
	GetProfileSummary(ctx context.Context, id int64) (*profile.Summary, error)
}

const profileNotFound = "Profile not found"

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) ListProfiles(c echo.Context) ([]profile.Profile, error) {
	profiles, err := s.repo.ListProfiles(c.Request().Context())
	if err != nil {
		return nil, repoError(c, err, profileNotFound, "list_profiles")
	}
	return profiles, nil
}

func (s *ProfileService) GetProfile(c echo.Context, id int64) (*profile.Profile, error) {
	p, err := s.repo.GetProfile(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, profileNotFound, "get_profile")
	}
	return p, nil
}

func (s *ProfileService) CreateProfile(c echo.Context, payload *profile.CreateProfilePayload) (*profile.Profile, error) {
	p, err := s.repo.CreateProfile(c.Request().Context(), payload.Fields)
	if err != nil {
		return nil, repoError(c, err, profileNotFound, "create_profile")
	}

	middleware.GetLogger(c).Info().
		Int64("profile_id", p.ID).
		Msg("profile created")

	return p, nil
}

// UpdateProfile replaces every editable column of the profile.
func (s *ProfileService) UpdateProfile(c echo.Context, payload *profile.UpdateProfilePayload) (*profile.Profile, error) {
	p, err := s.repo.UpdateProfile(c.Request().Context(), payload.ID, payload.Fields)
	if err != nil {
		return nil, repoError(c, err, profileNotFound, "update_profile")
	}
	return p, nil
}

// DeleteProfile removes the profile. Skills, projects, education and
// hobbies go with it through ON DELETE CASCADE.
func (s *ProfileService) DeleteProfile(c echo.Context, id int64) error {
	if err := s.repo.DeleteProfile(c.Request().Context(), id); err != nil {
		return repoError(c, err, profileNotFound, "delete_profile")
	}

	middleware.GetLogger(c).Info().
		Int64("profile_id", id).
		Msg("profile deleted")

	return nil
}

func (s *ProfileService) GetProfileSummary(c echo.Context, id int64) (*profile.Summary, error) {
	summary, err := s.repo.GetProfileSummary(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, profileNotFound, "get_profile_summary")
	}
	return summary, nil
}
