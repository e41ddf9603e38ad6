package repository

import (
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/model/skill"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skillCols = []string{"id", "profile_id", "name", "proficiency", "type", "icon", "created_at"}

func TestSkillRepository_ListSkills(t *testing.T) {
	mock := newMock(t)
	repo := NewSkillRepository(mock)

	mock.ExpectQuery(sql("FROM skills WHERE ($1::bigint = 0 OR profile_id = $1) ORDER BY proficiency DESC")).
		WithArgs(int64(0)).
		WillReturnRows(pgxmock.NewRows(skillCols).
			AddRow(int64(1), int64(1), "Go", 95, "backend", "go.svg", createdAt).
			AddRow(int64(2), int64(2), "CSS", 60, "frontend", "", createdAt))

	skills, err := repo.ListSkills(ctx(), 0)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, 95, skills[0].Proficiency)
}

func TestSkillRepository_CreateSkillUnknownProfile(t *testing.T) {
	mock := newMock(t)
	repo := NewSkillRepository(mock)

	fkErr := &pgconn.PgError{Code: "23503", TableName: "skills", ConstraintName: "skills_profile_id_fkey"}
	mock.ExpectQuery(sql("INSERT INTO skills")).
		WithArgs(int64(99), "Go", 80, "backend", "").
		WillReturnError(fkErr)

	_, err := repo.CreateSkill(ctx(), skill.Fields{ProfileID: 99, Name: "Go", Proficiency: 80, Type: "backend"})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23503", pgErr.Code)
}

func TestSkillRepository_SkillsByType(t *testing.T) {
	mock := newMock(t)
	repo := NewSkillRepository(mock)

	mock.ExpectQuery(sql("GROUP BY type ORDER BY avg_proficiency DESC")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"type", "skill_count", "avg_proficiency", "max_proficiency", "min_proficiency"}).
			AddRow("backend", int64(3), 88.33, 95, 80).
			AddRow("frontend", int64(2), 65.0, 70, 60))

	stats, err := repo.SkillsByType(ctx(), 1)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "backend", stats[0].Type)
	assert.Equal(t, int64(3), stats[0].SkillCount)
	assert.Equal(t, 95, stats[0].MaxProficiency)
	assert.Equal(t, 60, stats[1].MinProficiency)
}

func TestSkillRepository_TopSkills(t *testing.T) {
	mock := newMock(t)
	repo := NewSkillRepository(mock)

	mock.ExpectQuery(sql("WHERE profile_id = $1 AND proficiency >= $2")).
		WithArgs(int64(1), 70).
		WillReturnRows(pgxmock.NewRows(skillCols).
			AddRow(int64(1), int64(1), "Go", 95, "backend", "", createdAt))

	skills, err := repo.TopSkills(ctx(), 1, 70)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
}
