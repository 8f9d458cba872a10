package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/pkg/validator"
	"github.com/incident-intake/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	msgSupportContactExists  = "Support contact already exists"
	msgSupportContactCreated = "Support contact created"
)

type SupportContactUseCase struct {
	intake   intakeStore
	sequence repository.SequenceRepository
	logger   *zap.Logger

	seedMu sync.Mutex
	seeded bool
}

func NewSupportContactUseCase(
	store repository.DocumentStore,
	sequence repository.SequenceRepository,
	logger *zap.Logger,
) *SupportContactUseCase {
	in := newIntakeStore(store, logger)
	return &SupportContactUseCase{
		intake:   in,
		sequence: sequence,
		logger:   in.logger,
	}
}

// InitSequence поднимает счётчик до max(_id) уже существующих контактов.
// Успешный посев выполняется один раз; CreateSupportContact вызывает его сам, если старт его не сделал
func (uc *SupportContactUseCase) InitSequence(ctx context.Context) error {
	uc.seedMu.Lock()
	defer uc.seedMu.Unlock()

	if uc.seeded {
		return nil
	}
	if err := uc.seed(ctx); err != nil {
		return err
	}
	uc.seeded = true
	return nil
}

func (uc *SupportContactUseCase) seed(ctx context.Context) error {
	var last domain.SupportContact
	found, err := uc.intake.store.FindLast(ctx, domain.CollectionSupportContacts, "_id", &last)
	if err != nil {
		return fmt.Errorf("read last support contact: %w", err)
	}

	var floor int64
	if found {
		floor = last.ID
	}
	if err := uc.sequence.Seed(ctx, domain.CollectionSupportContacts, floor); err != nil {
		return fmt.Errorf("seed support contact sequence: %w", err)
	}

	uc.logger.Info("Support contact sequence seeded", zap.Int64("floor", floor))
	return nil
}

func (uc *SupportContactUseCase) CreateSupportContact(ctx context.Context, req dto.CreateSupportContactRequest) (*dto.Ack, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.InitSequence(ctx); err != nil {
		uc.logger.Error("Failed to seed support contact sequence", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := uc.sequence.Next(ctx, domain.CollectionSupportContacts)
	if err != nil {
		uc.logger.Error("Failed to allocate support contact id", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	contact := domain.SupportContact{
		ID:        id,
		Name:      req.Name,
		Phone:     req.Phone,
		Channel:   req.Channel,
		CreatedAt: req.CreatedAt.Time(),
	}

	if _, err := uc.intake.insert(ctx, domain.CollectionSupportContacts, contact, msgSupportContactExists); err != nil {
		return nil, err
	}

	uc.logger.Info("Support contact created",
		zap.Int64("id", contact.ID),
		zap.String("channel", contact.Channel),
	)

	return ack(msgSupportContactCreated, "id", contact.ID), nil
}
