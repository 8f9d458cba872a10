package usecase

import (
	"context"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/pkg/validator"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	msgInvalidAlertWindow = "end_at must be greater than start_at"
	msgAlertCreated       = "Alert created successfully"
)

type AlertUseCase struct {
	intake intakeStore
	logger *zap.Logger
}

func NewAlertUseCase(store repository.DocumentStore, logger *zap.Logger) *AlertUseCase {
	in := newIntakeStore(store, logger)
	return &AlertUseCase{
		intake: in,
		logger: in.logger,
	}
}

func (uc *AlertUseCase) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	alert := domain.Alert{
		AlertType:   req.AlertType,
		Level:       domain.AlertLevel(req.Level),
		Description: *req.Description,
		StartAt:     req.StartAt.Time(),
		EndAt:       req.EndAt.Time(),
		CreatedAt:   req.CreatedAt.Time(),
		UpdatedAt:   req.UpdatedAt.Time(),
	}
	if !alert.ValidWindow() {
		return nil, errors.NewConflict(msgInvalidAlertWindow)
	}

	id, err := uc.intake.insert(ctx, domain.CollectionAlerts, alert, msgDuplicateDocument)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Alert created",
		zap.String("alert_type", alert.AlertType),
		zap.String("level", string(alert.Level)),
	)

	return ack(msgAlertCreated, "alert_id", id), nil
}
