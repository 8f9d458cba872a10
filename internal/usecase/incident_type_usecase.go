package usecase

import (
	"context"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/validator"
	"github.com/incident-intake/internal/usecase/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	msgIncidentTypeExists  = "Incident type already exists"
	msgIncidentTypeCreated = "Incident type created successfully"
)

type IncidentTypeUseCase struct {
	intake intakeStore
	logger *zap.Logger
}

func NewIncidentTypeUseCase(store repository.DocumentStore, logger *zap.Logger) *IncidentTypeUseCase {
	in := newIntakeStore(store, logger)
	return &IncidentTypeUseCase{
		intake: in,
		logger: in.logger,
	}
}

func (uc *IncidentTypeUseCase) CreateIncidentType(ctx context.Context, req dto.CreateIncidentTypeRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireAbsent(ctx, domain.CollectionIncidentTypes, bson.M{"_id": *req.ID}, msgIncidentTypeExists); err != nil {
		return nil, err
	}

	incidentType := domain.IncidentType{
		ID:              *req.ID,
		Name:            req.Name,
		DefaultPriority: *req.DefaultPriority,
		TargetSLAHours:  *req.TargetSLAHours,
		CreatedAt:       req.CreatedAt.Time(),
	}

	if _, err := uc.intake.insert(ctx, domain.CollectionIncidentTypes, incidentType, msgIncidentTypeExists); err != nil {
		return nil, err
	}

	uc.logger.Info("Incident type created", zap.Int64("incident_type_id", incidentType.ID))

	return ack(msgIncidentTypeCreated, "incident_type_id", incidentType.ID), nil
}
