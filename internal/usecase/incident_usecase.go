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
	msgIncidentTypeNotFound = "Incident type not found"
	msgReporterNotFound     = "Reporter not found"
	msgIncidentExists       = "Incident already exists"
	msgIncidentCreated      = "Incident created successfully"
	msgIncidentNotFound     = "Incident not found"
	msgActorNotFound        = "Actor not found"
	msgHistoryCreated       = "Incident history created"
	msgMediaCreated         = "Incident media created"
	msgAssigneeNotFound     = "Assigned user not found"
	msgAssignerNotFound     = "Assigned by user not found"
	msgIncidentAssigned     = "Incident assigned successfully"
	msgAlreadyVoted         = "User already voted for this incident"
	msgVoteRecorded         = "Incident vote recorded"
)

// IncidentUseCase - приём обращений и связанных с ними записей (история, медиа, назначения, голоса)
type IncidentUseCase struct {
	intake intakeStore
	logger *zap.Logger
}

func NewIncidentUseCase(store repository.DocumentStore, logger *zap.Logger) *IncidentUseCase {
	in := newIntakeStore(store, logger)
	return &IncidentUseCase{
		intake: in,
		logger: in.logger,
	}
}

func (uc *IncidentUseCase) CreateIncident(ctx context.Context, req dto.CreateIncidentRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionIncidentTypes, *req.IncidentTypeID, msgIncidentTypeNotFound},
		reference{domain.CollectionUsers, req.ReporterID, msgReporterNotFound},
		reference{domain.CollectionAreas, *req.AreaID, msgAreaNotFound},
	); err != nil {
		return nil, err
	}

	if err := uc.intake.requireAbsent(ctx, domain.CollectionIncidents, bson.M{"_id": req.ID}, msgIncidentExists); err != nil {
		return nil, err
	}

	incident := domain.Incident{
		ID:               req.ID,
		IncidentTypeID:   *req.IncidentTypeID,
		Summary:          req.Summary,
		Description:      *req.Description,
		Status:           domain.IncidentStatus(req.Status),
		Priority:         *req.Priority,
		ReporterID:       req.ReporterID,
		AreaID:           *req.AreaID,
		LocationText:     *req.LocationText,
		Location:         toGeoPoint(req.Location),
		CitizenConfirmed: req.CitizenConfirmed,
		ReportedAt:       req.ReportedAt.Time(),
		UpdatedAt:        req.UpdatedAt.Time(),
		ResolvedAt:       req.ResolvedAt.TimePtr(),
	}

	if _, err := uc.intake.insert(ctx, domain.CollectionIncidents, incident, msgIncidentExists); err != nil {
		return nil, err
	}

	uc.logger.Info("Incident created",
		zap.String("incident_id", incident.ID),
		zap.String("status", string(incident.Status)),
		zap.Int64("area_id", incident.AreaID),
	)

	return ack(msgIncidentCreated, "incident_id", incident.ID), nil
}

// CreateHistory - запись в историю обращения. Переходы статусов не проверяются
func (uc *IncidentUseCase) CreateHistory(ctx context.Context, req dto.CreateIncidentHistoryRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionIncidents, req.IncidentID, msgIncidentNotFound},
		reference{domain.CollectionUsers, req.ActorID, msgActorNotFound},
	); err != nil {
		return nil, err
	}

	id, err := uc.intake.insert(ctx, domain.CollectionIncidentHistory, domain.IncidentHistory{
		IncidentID: req.IncidentID,
		Status:     domain.IncidentStatus(req.Status),
		Note:       *req.Note,
		ActorID:    req.ActorID,
		CreatedAt:  req.CreatedAt.Time(),
	}, msgDuplicateDocument)
	if err != nil {
		return nil, err
	}

	return ack(msgHistoryCreated, "history_id", id), nil
}

func (uc *IncidentUseCase) CreateMedia(ctx context.Context, req dto.CreateIncidentMediaRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionIncidents, req.IncidentID, msgIncidentNotFound},
	); err != nil {
		return nil, err
	}

	id, err := uc.intake.insert(ctx, domain.CollectionIncidentMedia, domain.IncidentMedia{
		IncidentID: req.IncidentID,
		URL:        req.URL,
		MimeType:   req.MimeType,
		Caption:    *req.Caption,
		CreatedAt:  req.CreatedAt.Time(),
	}, msgDuplicateDocument)
	if err != nil {
		return nil, err
	}

	return ack(msgMediaCreated, "media_id", id), nil
}

func (uc *IncidentUseCase) CreateAssignment(ctx context.Context, req dto.CreateIncidentAssignmentRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionIncidents, req.IncidentID, msgIncidentNotFound},
		reference{domain.CollectionUsers, req.AssignedTo, msgAssigneeNotFound},
		reference{domain.CollectionUsers, req.AssignedBy, msgAssignerNotFound},
	); err != nil {
		return nil, err
	}

	id, err := uc.intake.insert(ctx, domain.CollectionIncidentAssignments, domain.IncidentAssignment{
		IncidentID: req.IncidentID,
		AssignedTo: req.AssignedTo,
		AssignedBy: req.AssignedBy,
		CreatedAt:  req.CreatedAt.Time(),
	}, msgDuplicateDocument)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Incident assigned",
		zap.String("incident_id", req.IncidentID),
		zap.String("assigned_to", req.AssignedTo),
	)

	return ack(msgIncidentAssigned, "assignment_id", id), nil
}

// CreateVote - голос гражданина; повторный голос той же пары отклоняется, первый сохраняется
func (uc *IncidentUseCase) CreateVote(ctx context.Context, req dto.CreateIncidentVoteRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionIncidents, req.IncidentID, msgIncidentNotFound},
		reference{domain.CollectionUsers, req.UserID, msgUserNotFound},
	); err != nil {
		return nil, err
	}

	pair := bson.M{"incident_id": req.IncidentID, "user_id": req.UserID}
	if err := uc.intake.requireAbsent(ctx, domain.CollectionIncidentVotes, pair, msgAlreadyVoted); err != nil {
		return nil, err
	}

	id, err := uc.intake.insert(ctx, domain.CollectionIncidentVotes, domain.IncidentVote{
		IncidentID: req.IncidentID,
		UserID:     req.UserID,
		Vote:       domain.VoteValue(req.Vote),
		Reason:     *req.Reason,
		CreatedAt:  req.CreatedAt.Time(),
	}, msgAlreadyVoted)
	if err != nil {
		return nil, err
	}

	return ack(msgVoteRecorded, "vote_id", id), nil
}
