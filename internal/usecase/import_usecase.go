package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImportUseCase переносит строки унаследованной SQL базы в документное хранилище.
// Каждая строка проходит через тот же конвейер, что и HTTP запрос
type ImportUseCase struct {
	legacy        repository.LegacyRepository
	users         *UserUseCase
	areas         *AreaUseCase
	incidentTypes *IncidentTypeUseCase
	incidents     *IncidentUseCase
	statuses      []string
	logger        *zap.Logger
}

func NewImportUseCase(
	legacy repository.LegacyRepository,
	users *UserUseCase,
	areas *AreaUseCase,
	incidentTypes *IncidentTypeUseCase,
	incidents *IncidentUseCase,
	statuses []string,
	logger *zap.Logger,
) *ImportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportUseCase{
		legacy:        legacy,
		users:         users,
		areas:         areas,
		incidentTypes: incidentTypes,
		incidents:     incidents,
		statuses:      statuses,
		logger:        logger,
	}
}

// Run импортирует коллекции в порядке зависимостей. Конфликты, отсутствующие ссылки
// и невалидные строки пропускаются; ошибка хранилища прерывает импорт
func (uc *ImportUseCase) Run(ctx context.Context) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Collections: make(map[string]*dto.ImportStats)}

	steps := []struct {
		collection string
		run        func(context.Context, *dto.ImportStats) error
	}{
		{domain.CollectionUsers, uc.importUsers},
		{domain.CollectionAreas, uc.importAreas},
		{domain.CollectionIncidentTypes, uc.importIncidentTypes},
		{domain.CollectionUserAreas, uc.importUserAreas},
		{domain.CollectionIncidents, uc.importIncidents},
	}

	for _, step := range steps {
		stats := &dto.ImportStats{}
		report.Collections[step.collection] = stats

		if err := step.run(ctx, stats); err != nil {
			return report, fmt.Errorf("import %s: %w", step.collection, err)
		}

		uc.logger.Info("Collection imported",
			zap.String("collection", step.collection),
			zap.Int("read", stats.Read),
			zap.Int("imported", stats.Imported),
			zap.Int("skipped", stats.Skipped),
		)
	}

	return report, nil
}

func (uc *ImportUseCase) importUsers(ctx context.Context, stats *dto.ImportStats) error {
	rows, err := uc.legacy.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		isActive := row.IsActive
		_, err := uc.users.CreateUser(ctx, dto.CreateUserRequest{
			ID:           row.ID,
			Name:         row.Name,
			Phone:        row.Phone,
			Email:        row.Email,
			PasswordHash: row.PasswordHash,
			Role:         row.Role,
			IsActive:     &isActive,
			CreatedAt:    dto.NewTimestamp(row.CreatedAt),
		})
		if err := uc.record(stats, domain.CollectionUsers, row.ID, err); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ImportUseCase) importAreas(ctx context.Context, stats *dto.ImportStats) error {
	rows, err := uc.legacy.ListAreas(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := row.ID
		_, err := uc.areas.CreateArea(ctx, dto.CreateAreaRequest{
			ID:        &id,
			Name:      row.Name,
			City:      row.City,
			Location:  dto.NewPointLocation(row.Lon, row.Lat),
			CreatedAt: dto.NewTimestamp(row.CreatedAt),
		})
		if err := uc.record(stats, domain.CollectionAreas, row.ID, err); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ImportUseCase) importIncidentTypes(ctx context.Context, stats *dto.ImportStats) error {
	rows, err := uc.legacy.ListIncidentTypes(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id, priority, sla := row.ID, row.DefaultPriority, row.TargetSLAHours
		_, err := uc.incidentTypes.CreateIncidentType(ctx, dto.CreateIncidentTypeRequest{
			ID:              &id,
			Name:            row.Name,
			DefaultPriority: &priority,
			TargetSLAHours:  &sla,
			CreatedAt:       dto.NewTimestamp(row.CreatedAt),
		})
		if err := uc.record(stats, domain.CollectionIncidentTypes, row.ID, err); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ImportUseCase) importUserAreas(ctx context.Context, stats *dto.ImportStats) error {
	rows, err := uc.legacy.ListUserAreas(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		areaID := row.AreaID
		_, err := uc.users.AssignUserToArea(ctx, dto.CreateUserAreaRequest{
			UserID: row.UserID,
			AreaID: &areaID,
		})
		key := fmt.Sprintf("%s/%d", row.UserID, row.AreaID)
		if err := uc.record(stats, domain.CollectionUserAreas, key, err); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ImportUseCase) importIncidents(ctx context.Context, stats *dto.ImportStats) error {
	rows, err := uc.legacy.ListIncidents(ctx, uc.statuses)
	if err != nil {
		return err
	}
	for _, row := range rows {
		_, err := uc.incidents.CreateIncident(ctx, legacyIncidentRequest(row))
		if err := uc.record(stats, domain.CollectionIncidents, row.ID, err); err != nil {
			return err
		}
	}
	return nil
}

func legacyIncidentRequest(row domain.LegacyIncident) dto.CreateIncidentRequest {
	typeID, priority, areaID := row.IncidentTypeID, row.Priority, row.AreaID
	description, locationText := row.Description, row.LocationText

	req := dto.CreateIncidentRequest{
		ID:             row.ID,
		IncidentTypeID: &typeID,
		Summary:        row.Summary,
		Description:    &description,
		Status:         row.Status,
		Priority:       &priority,
		ReporterID:     row.ReporterID,
		AreaID:         &areaID,
		LocationText:   &locationText,
		Location:       dto.NewPointLocation(row.Lon, row.Lat),
		ReportedAt:     dto.NewTimestamp(row.ReportedAt),
		UpdatedAt:      dto.NewTimestamp(row.UpdatedAt),
	}
	if row.CitizenConfirmed.Valid {
		confirmed := row.CitizenConfirmed.Bool
		req.CitizenConfirmed = &confirmed
	}
	if row.ResolvedAt.Valid {
		resolved := dto.NewTimestamp(row.ResolvedAt.Time)
		req.ResolvedAt = &resolved
	}
	return req
}

// record учитывает результат одной строки; возвращает ошибку только если импорт нужно прервать
func (uc *ImportUseCase) record(stats *dto.ImportStats, collection string, key interface{}, err error) error {
	stats.Read++
	if err == nil {
		stats.Imported++
		return nil
	}

	if skippable(err) {
		stats.Skipped++
		uc.logger.Warn("Legacy row skipped",
			zap.String("collection", collection),
			zap.Any("key", key),
			zap.Error(err),
		)
		return nil
	}
	return err
}

func skippable(err error) bool {
	return stderrors.Is(err, errors.ErrConflict) ||
		stderrors.Is(err, errors.ErrNotFound) ||
		stderrors.Is(err, errors.ErrValidation)
}
