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
	msgAreaExists  = "Area already exists"
	msgAreaCreated = "Area created successfully"
)

type AreaUseCase struct {
	intake intakeStore
	logger *zap.Logger
}

func NewAreaUseCase(store repository.DocumentStore, logger *zap.Logger) *AreaUseCase {
	in := newIntakeStore(store, logger)
	return &AreaUseCase{
		intake: in,
		logger: in.logger,
	}
}

func (uc *AreaUseCase) CreateArea(ctx context.Context, req dto.CreateAreaRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireAbsent(ctx, domain.CollectionAreas, bson.M{"_id": *req.ID}, msgAreaExists); err != nil {
		return nil, err
	}

	area := domain.Area{
		ID:        *req.ID,
		Name:      req.Name,
		City:      req.City,
		Location:  toGeoPoint(req.Location),
		CreatedAt: req.CreatedAt.Time(),
	}

	if _, err := uc.intake.insert(ctx, domain.CollectionAreas, area, msgAreaExists); err != nil {
		return nil, err
	}

	uc.logger.Info("Area created",
		zap.Int64("area_id", area.ID),
		zap.String("city", area.City),
	)

	return ack(msgAreaCreated, "area_id", area.ID), nil
}
