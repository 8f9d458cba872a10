package usecase

import (
	"context"
	stderrors "errors"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/pkg/validator"
	"github.com/incident-intake/internal/usecase/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	msgEmailExists      = "Email already exists"
	msgUserExists       = "User already exists"
	msgUserCreated      = "User created successfully"
	msgUserNotFound     = "User not found"
	msgAreaNotFound     = "Area not found"
	msgAlreadyAssigned  = "User already assigned to this area"
	msgUserAreaAssigned = "User assigned to area successfully"
)

type UserUseCase struct {
	intake intakeStore
	logger *zap.Logger
}

func NewUserUseCase(store repository.DocumentStore, logger *zap.Logger) *UserUseCase {
	in := newIntakeStore(store, logger)
	return &UserUseCase{
		intake: in,
		logger: in.logger,
	}
}

// CreateUser - регистрация пользователя с внешним идентификатором
func (uc *UserUseCase) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireAbsent(ctx, domain.CollectionUsers, bson.M{"email": req.Email}, msgEmailExists); err != nil {
		return nil, err
	}
	if err := uc.intake.requireAbsent(ctx, domain.CollectionUsers, bson.M{"_id": req.ID}, msgUserExists); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := domain.User{
		ID:           req.ID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Role:         domain.UserRole(req.Role),
		IsActive:     isActive,
		CreatedAt:    req.CreatedAt.Time(),
	}

	if _, err := uc.intake.insert(ctx, domain.CollectionUsers, user, msgUserExists); err != nil {
		// Гонка: уникальный индекс по email сработал после предпроверки
		if stderrors.Is(err, errors.ErrConflict) {
			return nil, uc.raceConflict(ctx, req.Email)
		}
		return nil, err
	}

	uc.logger.Info("User created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return ack(msgUserCreated, "user_id", user.ID), nil
}

// raceConflict определяет, какой из уникальных ключей пользователя был занят конкурентной вставкой
func (uc *UserUseCase) raceConflict(ctx context.Context, email string) error {
	taken, err := uc.intake.exists(ctx, domain.CollectionUsers, bson.M{"email": email})
	if err != nil {
		return err
	}
	if taken {
		return errors.NewConflict(msgEmailExists)
	}
	return errors.NewConflict(msgUserExists)
}

// AssignUserToArea - закрепление пользователя за районом
func (uc *UserUseCase) AssignUserToArea(ctx context.Context, req dto.CreateUserAreaRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.intake.requireExists(ctx,
		reference{domain.CollectionUsers, req.UserID, msgUserNotFound},
		reference{domain.CollectionAreas, *req.AreaID, msgAreaNotFound},
	); err != nil {
		return nil, err
	}

	pair := bson.M{"user_id": req.UserID, "area_id": *req.AreaID}
	if err := uc.intake.requireAbsent(ctx, domain.CollectionUserAreas, pair, msgAlreadyAssigned); err != nil {
		return nil, err
	}

	id, err := uc.intake.insert(ctx, domain.CollectionUserAreas, domain.UserArea{
		UserID: req.UserID,
		AreaID: *req.AreaID,
	}, msgAlreadyAssigned)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User assigned to area",
		zap.String("user_id", req.UserID),
		zap.Int64("area_id", *req.AreaID),
	)

	return ack(msgUserAreaAssigned, "id", id), nil
}
