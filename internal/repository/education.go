package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model/education"
	"github.com/jackc/pgx/v5"
)

const educationColumns = `id, profile_id, institution, degree, field, start_year, end_year, description,
	display_order, created_at`

type EducationRepository struct {
	db DBTX
}

func NewEducationRepository(db DBTX) *EducationRepository {
	return &EducationRepository{db: db}
}

func scanEducation(row pgx.Row) (education.Education, error) {
	var e education.Education
	err := row.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear,
		&e.Description, &e.DisplayOrder, &e.CreatedAt)
	return e, err
}

func educationArgs(f education.Fields) []any {
	return []any{f.ProfileID, f.Institution, f.Degree, f.Field, f.StartYear, f.EndYear, f.Description, f.DisplayOrder}
}

func (r *EducationRepository) ListEducation(ctx context.Context, profileID int64) ([]education.Education, error) {
	stmt := `
		SELECT ` + educationColumns + `
		FROM education
		WHERE ($1::bigint = 0 OR profile_id = $1)
		ORDER BY display_order ASC, start_year DESC`

	rows, err := r.db.Query(ctx, stmt, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}

	entries, err := collectRows(rows, scanEducation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan education: %w", err)
	}
	return entries, nil
}

func (r *EducationRepository) GetEducation(ctx context.Context, id int64) (*education.Education, error) {
	e, err := scanEducation(r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get education id=%d: %w", id, err)
	}
	return &e, nil
}

func (r *EducationRepository) CreateEducation(ctx context.Context, f education.Fields) (*education.Education, error) {
	stmt := `
		INSERT INTO education (profile_id, institution, degree, field, start_year, end_year, description,
			display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + educationColumns

	e, err := scanEducation(r.db.QueryRow(ctx, stmt, educationArgs(f)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return &e, nil
}

func (r *EducationRepository) UpdateEducation(ctx context.Context, id int64, f education.Fields) (*education.Education, error) {
	stmt := `
		UPDATE education
		SET profile_id = $1, institution = $2, degree = $3, field = $4, start_year = $5, end_year = $6,
			description = $7, display_order = $8
		WHERE id = $9
		RETURNING ` + educationColumns

	e, err := scanEducation(r.db.QueryRow(ctx, stmt, append(educationArgs(f), id)...))
	if err != nil {
		return nil, fmt.Errorf("failed to update education id=%d: %w", id, err)
	}
	return &e, nil
}

func (r *EducationRepository) DeleteEducation(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM education WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete education id=%d: %w", id, err)
	}
	return nil
}
