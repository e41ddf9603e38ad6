package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/profile"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	Handler
	profileService *service.ProfileService
}

func NewProfileHandler(s *server.Server, profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		Handler:        NewHandler(s),
		profileService: profileService,
	}
}

func (h *ProfileHandler) ListProfiles(c echo.Context, _ *model.NoPayload) (model.Envelope, error) {
	profiles, err := h.profileService.ListProfiles(c)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(profiles), nil
}

func (h *ProfileHandler) GetProfile(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	p, err := h.profileService.GetProfile(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(p), nil
}

func (h *ProfileHandler) CreateProfile(c echo.Context, req *profile.CreateProfilePayload) (model.Envelope, error) {
	p, err := h.profileService.CreateProfile(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Created("Profile", p.ID, p), nil
}

func (h *ProfileHandler) UpdateProfile(c echo.Context, req *profile.UpdateProfilePayload) (model.Envelope, error) {
	p, err := h.profileService.UpdateProfile(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated("Profile", p), nil
}

func (h *ProfileHandler) DeleteProfile(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.profileService.DeleteProfile(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted("Profile"), nil
}

// GetProfileSummary returns the profile with its skill and project counts
// and the average skill proficiency.
func (h *ProfileHandler) GetProfileSummary(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	summary, err := h.profileService.GetProfileSummary(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(summary), nil
}
