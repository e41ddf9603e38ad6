package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/model/skill"
	"github.com/labstack/echo/v4"
)

type SkillRepository interface {
	ListSkills(ctx context.Context, profileID int64) ([]skill.Skill, error)
	GetSkill(ctx context.Context, id int64) (*skill.Skill, error)
	CreateSkill(ctx context.Context, f skill.Fields) (*skill.Skill, error)
	UpdateSkill(ctx context.Context, id int64, f skill.Fields) (*skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
	SkillsByType(ctx context.Context, profileID int64) ([]skill.TypeStats, error)
	TopSkills(ctx context.Context, profileID int64, minProficiency int) ([]skill.Skill, error)
}

const skillNotFound = "Skill not found"

type SkillService struct {
	repo SkillRepository
}

func NewSkillService(repo SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) ListSkills(c echo.Context, query *skill.ListSkillsQuery) ([]skill.Skill, error) {
	skills, err := s.repo.ListSkills(c.Request().Context(), query.ProfileID)
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "list_skills")
	}
	return skills, nil
}

func (s *SkillService) GetSkill(c echo.Context, id int64) (*skill.Skill, error) {
	sk, err := s.repo.GetSkill(c.Request().Context(), id)
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "get_skill")
	}
	return sk, nil
}

func (s *SkillService) CreateSkill(c echo.Context, payload *skill.CreateSkillPayload) (*skill.Skill, error) {
	sk, err := s.repo.CreateSkill(c.Request().Context(), payload.Fields)
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "create_skill")
	}

	middleware.GetLogger(c).Info().
		Int64("skill_id", sk.ID).
		Int64("profile_id", sk.ProfileID).
		Msg("skill created")

	return sk, nil
}

func (s *SkillService) UpdateSkill(c echo.Context, payload *skill.UpdateSkillPayload) (*skill.Skill, error) {
	sk, err := s.repo.UpdateSkill(c.Request().Context(), payload.ID, payload.Fields)
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "update_skill")
	}
	return sk, nil
}

func (s *SkillService) DeleteSkill(c echo.Context, id int64) error {
	if err := s.repo.DeleteSkill(c.Request().Context(), id); err != nil {
		return repoError(c, err, skillNotFound, "delete_skill")
	}
	return nil
}

// SkillsByType aggregates the skills of one profile per type.
func (s *SkillService) SkillsByType(c echo.Context, query *skill.SkillsByTypeQuery) ([]skill.TypeStats, error) {
	stats, err := s.repo.SkillsByType(c.Request().Context(), query.ProfileID)
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "skills_by_type")
	}
	return stats, nil
}

// TopSkills lists skills at or above the requested proficiency, 70 by default.
func (s *SkillService) TopSkills(c echo.Context, query *skill.TopSkillsQuery) ([]skill.Skill, error) {
	skills, err := s.repo.TopSkills(c.Request().Context(), query.ProfileID, query.Threshold())
	if err != nil {
		return nil, repoError(c, err, skillNotFound, "top_skills")
	}
	return skills, nil
}
