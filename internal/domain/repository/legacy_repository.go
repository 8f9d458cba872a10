package repository

import (
	"context"

	"github.com/incident-intake/internal/domain"
)

// LegacyRepository читает данные из унаследованной реляционной базы для импорта
type LegacyRepository interface {
	ListUsers(ctx context.Context) ([]domain.LegacyUser, error)
	ListAreas(ctx context.Context) ([]domain.LegacyArea, error)
	ListUserAreas(ctx context.Context) ([]domain.LegacyUserArea, error)
	ListIncidentTypes(ctx context.Context) ([]domain.LegacyIncidentType, error)

	// ListIncidents возвращает инциденты с указанными статусами; пустой список - все
	ListIncidents(ctx context.Context, statuses []string) ([]domain.LegacyIncident, error)
}
