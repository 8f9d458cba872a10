package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incident-intake/internal/domain/repository"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.LegacyRepository, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLegacyRepository(NewDBForTest(sqlx.NewDb(db, "sqlmock"), nil))
	return mock, repo, func() { db.Close() }
}

// pqArrayArg сравнивает аргумент pq.Array со списком строк
type pqArrayArg []string

func (a pqArrayArg) Match(v driver.Value) bool {
	want, err := pq.Array([]string(a)).Value()
	if err != nil {
		return false
	}
	return v == want
}

func TestLegacyRepository_ListUsers(t *testing.T) {
	mock, repo, cleanup := setupMockDB(t)
	defer cleanup()

	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "password_hash", "role", "is_active", "created_at",
	}).
		AddRow("8f14e45f-ceea-4c6b-9a3e-0d1f2b3c4d5e", "Lan", "0901", "lan@example.com", "hash", "citizen", true, created).
		AddRow("c9f0f895-fb98-4b91-8d3e-6f2a1b0c9d8e", "Minh", "0902", "minh@example.com", "hash", "operator", false, created)

	mock.ExpectQuery(`SELECT .+ FROM users`).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "lan@example.com", users[0].Email)
	assert.Equal(t, "operator", users[1].Role)
	assert.False(t, users[1].IsActive)
	assert.True(t, created.Equal(users[0].CreatedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepository_ListAreas(t *testing.T) {
	mock, repo, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "city", "lon", "lat", "created_at"}).
		AddRow(int64(1), "District A", "X", 106.7, 10.8, time.Now())

	mock.ExpectQuery(`SELECT .+ FROM areas`).WillReturnRows(rows)

	areas, err := repo.ListAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, int64(1), areas[0].ID)
	assert.Equal(t, 106.7, areas[0].Lon)
	assert.Equal(t, 10.8, areas[0].Lat)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepository_ListIncidents_FilteredByStatus(t *testing.T) {
	mock, repo, cleanup := setupMockDB(t)
	defer cleanup()

	reported := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "incident_type_id", "summary", "description", "status", "priority",
		"reporter_id", "area_id", "location_text", "lon", "lat",
		"citizen_confirmed", "reported_at", "updated_at", "resolved_at",
	}).AddRow(
		"0b5a3c1e-2d4f-4e6a-8b9c-1d2e3f4a5b6c", int64(2), "Flooded street", "Water up to knees", "sent", int64(3),
		"8f14e45f-ceea-4c6b-9a3e-0d1f2b3c4d5e", int64(1), "Le Loi St.", 106.7, 10.8,
		nil, reported, reported, nil,
	)

	mock.ExpectQuery(`SELECT .+ FROM incidents\s+WHERE status = ANY\(\$1\)`).
		WithArgs(pqArrayArg{"sent", "reopened"}).
		WillReturnRows(rows)

	incidents, err := repo.ListIncidents(context.Background(), []string{"sent", "reopened"})
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "Flooded street", incidents[0].Summary)
	assert.False(t, incidents[0].CitizenConfirmed.Valid)
	assert.False(t, incidents[0].ResolvedAt.Valid)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepository_ListIncidents_AllStatuses(t *testing.T) {
	mock, repo, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM incidents\s+ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	incidents, err := repo.ListIncidents(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, incidents)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepository_QueryError(t *testing.T) {
	mock, repo, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM incident_types`).
		WillReturnError(errors.New("relation \"incident_types\" does not exist"))

	types, err := repo.ListIncidentTypes(context.Background())
	require.Error(t, err)
	assert.Nil(t, types)
	assert.Contains(t, err.Error(), "list incident types")

	require.NoError(t, mock.ExpectationsWereMet())
}
