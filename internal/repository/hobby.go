package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model/hobby"
	"github.com/jackc/pgx/v5"
)

const hobbyColumns = `id, profile_id, name, description, icon, category, created_at`

type HobbyRepository struct {
	db DBTX
}

func NewHobbyRepository(db DBTX) *HobbyRepository {
	return &HobbyRepository{db: db}
}

func scanHobby(row pgx.Row) (hobby.Hobby, error) {
	var h hobby.Hobby
	err := row.Scan(&h.ID, &h.ProfileID, &h.Name, &h.Description, &h.Icon, &h.Category, &h.CreatedAt)
	return h, err
}

// ListHobbies filters by profile and category; a zero value disables that filter.
func (r *HobbyRepository) ListHobbies(ctx context.Context, profileID int64, category hobby.Category) ([]hobby.Hobby, error) {
	stmt := `
		SELECT ` + hobbyColumns + `
		FROM hobbies
		WHERE ($1::bigint = 0 OR profile_id = $1)
			AND ($2::text = '' OR category = $2)
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, stmt, profileID, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list hobbies: %w", err)
	}

	hobbies, err := collectRows(rows, scanHobby)
	if err != nil {
		return nil, fmt.Errorf("failed to scan hobbies: %w", err)
	}
	return hobbies, nil
}

func (r *HobbyRepository) GetHobby(ctx context.Context, id int64) (*hobby.Hobby, error) {
	h, err := scanHobby(r.db.QueryRow(ctx, `SELECT `+hobbyColumns+` FROM hobbies WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get hobby id=%d: %w", id, err)
	}
	return &h, nil
}

func (r *HobbyRepository) CreateHobby(ctx context.Context, f hobby.Fields) (*hobby.Hobby, error) {
	stmt := `
		INSERT INTO hobbies (profile_id, name, description, icon, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + hobbyColumns

	h, err := scanHobby(r.db.QueryRow(ctx, stmt,
		f.ProfileID, f.Name, f.Description, f.Icon, string(f.CategoryOrDefault())))
	if err != nil {
		return nil, fmt.Errorf("failed to create hobby: %w", err)
	}
	return &h, nil
}

func (r *HobbyRepository) UpdateHobby(ctx context.Context, id int64, f hobby.Fields) (*hobby.Hobby, error) {
	stmt := `
		UPDATE hobbies
		SET profile_id = $1, name = $2, description = $3, icon = $4, category = $5
		WHERE id = $6
		RETURNING ` + hobbyColumns

	h, err := scanHobby(r.db.QueryRow(ctx, stmt,
		f.ProfileID, f.Name, f.Description, f.Icon, string(f.CategoryOrDefault()), id))
	if err != nil {
		return nil, fmt.Errorf("failed to update hobby id=%d: %w", id, err)
	}
	return &h, nil
}

func (r *HobbyRepository) DeleteHobby(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM hobbies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete hobby id=%d: %w", id, err)
	}
	return nil
}
