package handler

import (
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/model/skill"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type SkillHandler struct {
	Handler
	skillService *service.SkillService
}

func NewSkillHandler(s *server.Server, skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{
		Handler:      NewHandler(s),
		skillService: skillService,
	}
}

func (h *SkillHandler) ListSkills(c echo.Context, req *skill.ListSkillsQuery) (model.Envelope, error) {
	skills, err := h.skillService.ListSkills(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(skills), nil
}

func (h *SkillHandler) GetSkill(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	s, err := h.skillService.GetSkill(c, req.ID)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(s), nil
}

func (h *SkillHandler) CreateSkill(c echo.Context, req *skill.CreateSkillPayload) (model.Envelope, error) {
	s, err := h.skillService.CreateSkill(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Created("Skill", s.ID, s), nil
}

func (h *SkillHandler) UpdateSkill(c echo.Context, req *skill.UpdateSkillPayload) (model.Envelope, error) {
	s, err := h.skillService.UpdateSkill(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.Updated("Skill", s), nil
}

func (h *SkillHandler) DeleteSkill(c echo.Context, req *model.IDPayload) (model.Envelope, error) {
	if err := h.skillService.DeleteSkill(c, req.ID); err != nil {
		return model.Envelope{}, err
	}
	return model.Deleted("Skill"), nil
}

func (h *SkillHandler) SkillsByType(c echo.Context, req *skill.SkillsByTypeQuery) (model.Envelope, error) {
	stats, err := h.skillService.SkillsByType(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(stats), nil
}

func (h *SkillHandler) TopSkills(c echo.Context, req *skill.TopSkillsQuery) (model.Envelope, error) {
	skills, err := h.skillService.TopSkills(c, req)
	if err != nil {
		return model.Envelope{}, err
	}
	return model.OK(skills), nil
}
