package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/lib/utils"
	"github.com/deppfellow/portfolio-backend/internal/model/project"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, profile_id, title, description, link, image, tags, display_order, created_at`

type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.Link, &p.Image, &p.Tags,
		&p.DisplayOrder, &p.CreatedAt)
	return p, err
}

func projectArgs(f project.Fields) []any {
	return []any{f.ProfileID, f.Title, f.Description, f.Link, f.Image, f.Tags, f.DisplayOrder}
}

func (r *ProjectRepository) ListProjects(ctx context.Context, profileID int64) ([]project.Project, error) {
	stmt := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1::bigint = 0 OR profile_id = $1)
		ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(ctx, stmt, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects, err := collectRows(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get project id=%d: %w", id, err)
	}
	return &p, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, f project.Fields) (*project.Project, error) {
	stmt := `
		INSERT INTO projects (profile_id, title, description, link, image, tags, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRow(ctx, stmt, projectArgs(f)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id int64, f project.Fields) (*project.Project, error) {
	stmt := `
		UPDATE projects
		SET profile_id = $1, title = $2, description = $3, link = $4, image = $5, tags = $6,
			display_order = $7
		WHERE id = $8
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRow(ctx, stmt, append(projectArgs(f), id)...))
	if err != nil {
		return nil, fmt.Errorf("failed to update project id=%d: %w", id, err)
	}
	return &p, nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	if err := execAffectingOne(ctx, r.db, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete project id=%d: %w", id, err)
	}
	return nil
}

// SearchByTag matches tag case-insensitively anywhere in the tags column.
func (r *ProjectRepository) SearchByTag(ctx context.Context, profileID int64, tag string) ([]project.Project, error) {
	stmt := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE profile_id = $1 AND tags ILIKE $2 ESCAPE '\'
		ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.Query(ctx, stmt, profileID, utils.ContainsPattern(tag))
	if err != nil {
		return nil, fmt.Errorf("failed to search projects by tag: %w", err)
	}

	projects, err := collectRows(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return projects, nil
}
