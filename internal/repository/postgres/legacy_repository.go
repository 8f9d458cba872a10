package postgres

import (
	"context"
	"fmt"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type legacyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLegacyRepository(db *DB) repository.LegacyRepository {
	return &legacyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *legacyRepository) ListUsers(ctx context.Context) ([]domain.LegacyUser, error) {
	query := `
		SELECT id::text AS id, name, phone, email, password_hash, role, is_active, created_at
		FROM users
		ORDER BY created_at, id
	`

	var users []domain.LegacyUser
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		r.logger.Error("Failed to list legacy users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *legacyRepository) ListAreas(ctx context.Context) ([]domain.LegacyArea, error) {
	query := `
		SELECT id, name, city, lon, lat, created_at
		FROM areas
		ORDER BY id
	`

	var areas []domain.LegacyArea
	if err := r.db.SelectContext(ctx, &areas, query); err != nil {
		r.logger.Error("Failed to list legacy areas", zap.Error(err))
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

func (r *legacyRepository) ListUserAreas(ctx context.Context) ([]domain.LegacyUserArea, error) {
	query := `
		SELECT user_id::text AS user_id, area_id
		FROM user_areas
		ORDER BY user_id, area_id
	`

	var links []domain.LegacyUserArea
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		r.logger.Error("Failed to list legacy user areas", zap.Error(err))
		return nil, fmt.Errorf("list user areas: %w", err)
	}
	return links, nil
}

func (r *legacyRepository) ListIncidentTypes(ctx context.Context) ([]domain.LegacyIncidentType, error) {
	query := `
		SELECT id, name, default_priority, target_sla_hours, created_at
		FROM incident_types
		ORDER BY id
	`

	var types []domain.LegacyIncidentType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to list legacy incident types", zap.Error(err))
		return nil, fmt.Errorf("list incident types: %w", err)
	}
	return types, nil
}

func (r *legacyRepository) ListIncidents(ctx context.Context, statuses []string) ([]domain.LegacyIncident, error) {
	query := `
		SELECT
			id::text AS id, incident_type_id, summary, description, status, priority,
			reporter_id::text AS reporter_id, area_id, location_text, lon, lat,
			citizen_confirmed, reported_at, updated_at, resolved_at
		FROM incidents
	`
	args := []interface{}{}

	if len(statuses) > 0 {
		query += ` WHERE status = ANY($1)`
		args = append(args, pq.Array(statuses))
	}
	query += ` ORDER BY reported_at, id`

	var incidents []domain.LegacyIncident
	if err := r.db.SelectContext(ctx, &incidents, query, args...); err != nil {
		r.logger.Error("Failed to list legacy incidents",
			zap.Strings("statuses", statuses),
			zap.Error(err))
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return incidents, nil
}
