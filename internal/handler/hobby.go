package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/hobby"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// HobbyHandler serves hobbies and tools. Both live in one table and differ by category.
type HobbyHandler struct {
	Handler
	hobbyService *service.HobbyService
}

func NewHobbyHandler(s *server.Server, hobbyService *service.HobbyService) *HobbyHandler {
	return &HobbyHandler{
		Handler:      NewHandler(s),
		hobbyService: hobbyService,
	}
}

func (h *HobbyHandler) ListHobbies(c echo.Context, req *hobby.ListHobbiesQuery) (model.Envelope, error) {
	hobbies, err := h.hobbyService.ListHobbies(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(hobbies), nil
}

func (h *HobbyHandler) GetHobby(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	hb, err := h.hobbyService.GetHobby(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(hb), nil
}

func (h *HobbyHandler) CreateHobby(c echo.Context, req *hobby.CreateHobbyPayload) (model.Envelope, error) {
	hb, err := h.hobbyService.CreateHobby(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Created("Hobby", hb.ID, hb), nil
}

func (h *HobbyHandler) UpdateHobby(c echo.Context, req *hobby.UpdateHobbyPayload) (model.Envelope, error) {
	hb, err := h.hobbyService.UpdateHobby(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated("Hobby", hb), nil
}

func (h *HobbyHandler) DeleteHobby(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.hobbyService.DeleteHobby(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted("Hobby"), nil
}
