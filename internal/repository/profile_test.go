package repository

import (
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/model/profile"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileCols = []string{
	"id", "name", "bio", "role", "location", "contact_email", "phone", "linkedin", "github", "facebook",
	"photo", "years_experience", "projects_completed", "created_at", "updated_at",
}

func profileRow(id int64, name string) []any {
	return []any{
		id, name, "Backend engineer", "Engineer", "Jakarta", "me@example.com", "+62", "", "https://github.com/me", "",
		"me.jpg", 5, 12, createdAt, createdAt,
	}
}

func TestProfileRepository_ListProfiles(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(sql("FROM profile ORDER BY id DESC")).
		WillReturnRows(pgxmock.NewRows(profileCols).
			AddRow(profileRow(2, "Second")...).
			AddRow(profileRow(1, "First")...))

	profiles, err := repo.ListProfiles(ctx())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, int64(2), profiles[0].ID)
	assert.Equal(t, "https://github.com/me", profiles[0].GitHub)
	assert.Equal(t, 12, profiles[1].ProjectsCompleted)
}

func TestProfileRepository_ListProfilesEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(sql("FROM profile ORDER BY id DESC")).
		WillReturnRows(pgxmock.NewRows(profileCols))

	profiles, err := repo.ListProfiles(ctx())
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestProfileRepository_GetProfileNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(sql("FROM profile WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetProfile(ctx(), 9)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestProfileRepository_CreateProfile(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	fields := profile.Fields{Name: "Ada", ContactEmail: "ada@example.com", YearsExperience: 3}

	mock.ExpectQuery(sql("INSERT INTO profile")).
		WithArgs("Ada", "", "", "", "ada@example.com", "", "", "", "", "", 3, 0).
		WillReturnRows(pgxmock.NewRows(profileCols).AddRow(profileRow(7, "Ada")...))

	created, err := repo.CreateProfile(ctx(), fields)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Ada", created.Name)
}

func TestProfileRepository_UpdateProfile(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(sql("UPDATE profile")).
		WithArgs("Ada", "", "", "", "", "", "", "", "", "", 0, 0, int64(7)).
		WillReturnRows(pgxmock.NewRows(profileCols).AddRow(profileRow(7, "Ada")...))

	updated, err := repo.UpdateProfile(ctx(), 7, profile.Fields{Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
}

func TestProfileRepository_DeleteProfile(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectExec(sql("DELETE FROM profile WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(sql("DELETE FROM profile WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteProfile(ctx(), 3))
	require.ErrorIs(t, repo.DeleteProfile(ctx(), 4), pgx.ErrNoRows)
}

func TestProfileRepository_GetProfileSummary(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	cols := append(append([]string{}, profileCols...),
		"total_skills", "total_projects", "total_education", "total_hobbies", "avg_skill_proficiency")
	row := append(profileRow(1, "Ada"), int64(4), int64(2), int64(1), int64(3), 82.5)

	mock.ExpectQuery(sql("COALESCE(ROUND(AVG(s.proficiency), 2), 0)::float8 AS avg_skill_proficiency")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(row...))

	summary, err := repo.GetProfileSummary(ctx(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", summary.Name)
	assert.Equal(t, int64(4), summary.TotalSkills)
	assert.Equal(t, int64(2), summary.TotalProjects)
	assert.Equal(t, int64(1), summary.TotalEducation)
	assert.Equal(t, int64(3), summary.TotalHobbies)
	assert.InDelta(t, 82.5, summary.AvgSkillProficiency, 0.001)
}
