package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model/profile"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, name, bio, role, location, contact_email, phone, linkedin, github, facebook,
	photo, years_experience, projects_completed, created_at, updated_at`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func profileDest(p *profile.Profile) []any {
	return []any{
		&p.ID, &p.Name, &p.Bio, &p.Role, &p.Location, &p.ContactEmail, &p.Phone,
		&p.LinkedIn, &p.GitHub, &p.Facebook, &p.Photo, &p.YearsExperience,
		&p.ProjectsCompleted, &p.CreatedAt, &p.UpdatedAt,
	}
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(profileDest(&p)...)
	return p, err
}

func profileArgs(f profile.Fields) []any {
	return []any{
		f.Name, f.Bio, f.Role, f.Location, f.ContactEmail, f.Phone,
		f.LinkedIn, f.GitHub, f.Facebook, f.Photo, f.YearsExperience, f.ProjectsCompleted,
	}
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profile ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles, err := collectRows(rows, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile id=%d: %w", id, err)
	}
	return &p, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, f profile.Fields) (*profile.Profile, error) {
	stmt := `
		INSERT INTO profile (name, bio, role, location, contact_email, phone, linkedin, github, facebook,
			photo, years_experience, projects_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, stmt, profileArgs(f)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, id int64, f profile.Fields) (*profile.Profile, error) {
	stmt := `
		UPDATE profile
		SET name = $1, bio = $2, role = $3, location = $4, contact_email = $5, phone = $6,
			linkedin = $7, github = $8, facebook = $9, photo = $10, years_experience = $11,
			projects_completed = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, stmt, append(profileArgs(f), id)...))
	if err != nil {
		return nil, fmt.Errorf("failed to update profile id=%d: %w", id, err)
	}
	return &p, nil
}

func (r *ProfileRepository) DeleteProfile(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM profile WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete profile id=%d: %w", id, err)
	}
	return nil
}

// GetProfileSummary returns the profile with its skill/project counts and
// average skill proficiency (0 without skills). Education and hobby counts
// use subqueries so they don't multiply the joined rows.
func (r *ProfileRepository) GetProfileSummary(ctx context.Context, id int64) (*profile.Summary, error) {
	stmt := `
		SELECT
			p.id, p.name, p.bio, p.role, p.location, p.contact_email, p.phone, p.linkedin, p.github,
			p.facebook, p.photo, p.years_experience, p.projects_completed, p.created_at, p.updated_at,
			COUNT(DISTINCT s.id) AS total_skills,
			COUNT(DISTINCT pr.id) AS total_projects,
			(SELECT COUNT(*) FROM education e WHERE e.profile_id = p.id) AS total_education,
			(SELECT COUNT(*) FROM hobbies h WHERE h.profile_id = p.id) AS total_hobbies,
			COALESCE(ROUND(AVG(s.proficiency), 2), 0)::float8 AS avg_skill_proficiency
		FROM profile p
		LEFT JOIN skills s ON s.profile_id = p.id
		LEFT JOIN projects pr ON pr.profile_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`

	var s profile.Summary
	dest := append(profileDest(&s.Profile),
		&s.TotalSkills, &s.TotalProjects, &s.TotalEducation, &s.TotalHobbies, &s.AvgSkillProficiency)

	if err := r.db.QueryRow(ctx, stmt, id).Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to get profile summary id=%d: %w", id, err)
	}
	return &s, nil
}
