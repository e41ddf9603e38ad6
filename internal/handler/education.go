package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/education"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

const educationResource = "Education record"

type EducationHandler struct {
	Handler
	educationService *service.EducationService
}

func NewEducationHandler(s *server.Server, educationService *service.EducationService) *EducationHandler {
	return &EducationHandler{
		Handler:          NewHandler(s),
		educationService: educationService,
	}
}

func (h *EducationHandler) ListEducation(c echo.Context, req *education.ListEducationQuery) (model.Envelope, error) {
	records, err := h.educationService.ListEducation(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(records), nil
}

func (h *EducationHandler) GetEducation(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	e, err := h.educationService.GetEducation(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(e), nil
}

func (h *EducationHandler) CreateEducation(c echo.Context, req *education.CreateEducationPayload) (model.Envelope, error) {
	e, err := h.educationService.CreateEducation(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Created(educationResource, e.ID, e), nil
}

func (h *EducationHandler) UpdateEducation(c echo.Context, req *education.UpdateEducationPayload) (model.Envelope, error) {
	e, err := h.educationService.UpdateEducation(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated(educationResource, e), nil
}

func (h *EducationHandler) DeleteEducation(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.educationService.DeleteEducation(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted(educationResource), nil
}
