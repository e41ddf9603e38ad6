package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model/skill"
	"github.com/jackc/pgx/v5"
)

const skillColumns = `id, profile_id, name, proficiency, type, icon, created_at`

type SkillRepository struct {
	db DBTX
}

func NewSkillRepository(db DBTX) *SkillRepository {
	return &SkillRepository{db: db}
}

func scanSkill(row pgx.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency, &s.Type, &s.Icon, &s.CreatedAt)
	return s, err
}

// ListSkills lists the skills of profileID, or all skills when profileID is 0.
func (r *SkillRepository) ListSkills(ctx context.Context, profileID int64) ([]skill.Skill, error) {
	stmt := `
		SELECT ` + skillColumns + `
		FROM skills
		WHERE ($1::bigint = 0 OR profile_id = $1)
		ORDER BY proficiency DESC, id`

	rows, err := r.db.Query(ctx, stmt, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills, err := collectRows(rows, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("failed to scan skills: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) GetSkill(ctx context.Context, id int64) (*skill.Skill, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get skill id=%d: %w", id, err)
	}
	return &s, nil
}

func (r *SkillRepository) CreateSkill(ctx context.Context, f skill.Fields) (*skill.Skill, error) {
	stmt := `
		INSERT INTO skills (profile_id, name, proficiency, type, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + skillColumns

	s, err := scanSkill(r.db.QueryRow(ctx, stmt, f.ProfileID, f.Name, f.Proficiency, f.Type, f.Icon))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, id int64, f skill.Fields) (*skill.Skill, error) {
	stmt := `
		UPDATE skills
		SET profile_id = $1, name = $2, proficiency = $3, type = $4, icon = $5
		WHERE id = $6
		RETURNING ` + skillColumns

	s, err := scanSkill(r.db.QueryRow(ctx, stmt, f.ProfileID, f.Name, f.Proficiency, f.Type, f.Icon, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update skill id=%d: %w", id, err)
	}
	return &s, nil
}

func (r *SkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM skills WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete skill id=%d: %w", id, err)
	}
	return nil
}

// SkillsByType groups the skills of a profile by type, best average first.
func (r *SkillRepository) SkillsByType(ctx context.Context, profileID int64) ([]skill.TypeStats, error) {
	stmt := `
		SELECT
			type,
			COUNT(*) AS skill_count,
			ROUND(AVG(proficiency), 2)::float8 AS avg_proficiency,
			MAX(proficiency) AS max_proficiency,
			MIN(proficiency) AS min_proficiency
		FROM skills
		WHERE profile_id = $1
		GROUP BY type
		ORDER BY avg_proficiency DESC, type`

	rows, err := r.db.Query(ctx, stmt, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to group skills by type: %w", err)
	}

	stats, err := collectRows(rows, func(row pgx.Row) (skill.TypeStats, error) {
		var ts skill.TypeStats
		err := row.Scan(&ts.Type, &ts.SkillCount, &ts.AvgProficiency, &ts.MaxProficiency, &ts.MinProficiency)
		return ts, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill type stats: %w", err)
	}
	return stats, nil
}

// TopSkills returns the skills of a profile with proficiency >= minProficiency.
func (r *SkillRepository) TopSkills(ctx context.Context, profileID int64, minProficiency int) ([]skill.Skill, error) {
	stmt := `
		SELECT ` + skillColumns + `
		FROM skills
		WHERE profile_id = $1 AND proficiency >= $2
		ORDER BY proficiency DESC, id`

	rows, err := r.db.Query(ctx, stmt, profileID, minProficiency)
	if err != nil {
		return nil, fmt.Errorf("failed to list top skills: %w", err)
	}

	skills, err := collectRows(rows, scanSkill)
	if err != nil {
		return nil, fmt.Errorf("failed to scan top skills: %w", err)
	}
	return skills, nil
}
