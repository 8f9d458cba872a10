package usecase

import (
	"context"
	stderrors "errors"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/usecase/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// msgDuplicateDocument - для коллекций без уникальных индексов, где _id генерирует хранилище
const msgDuplicateDocument = "Document already exists"

// reference - ссылка на документ, который обязан существовать
type reference struct {
	collection string
	id         interface{}
	missing    string
}

// intakeStore - общие шаги конвейера создания поверх DocumentStore
type intakeStore struct {
	store  repository.DocumentStore
	logger *zap.Logger
}

func newIntakeStore(store repository.DocumentStore, logger *zap.Logger) intakeStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return intakeStore{store: store, logger: logger}
}

// requireExists проверяет ссылки по порядку, первая отсутствующая даёт NotFound
func (s intakeStore) requireExists(ctx context.Context, refs ...reference) error {
	for _, ref := range refs {
		found, err := s.exists(ctx, ref.collection, bson.M{"_id": ref.id})
		if err != nil {
			return err
		}
		if !found {
			return errors.NewNotFound(ref.missing)
		}
	}
	return nil
}

// requireAbsent - предварительная проверка уникальности
func (s intakeStore) requireAbsent(ctx context.Context, collection string, filter bson.M, conflict string) error {
	found, err := s.exists(ctx, collection, filter)
	if err != nil {
		return err
	}
	if found {
		return errors.NewConflict(conflict)
	}
	return nil
}

func (s intakeStore) exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	found, err := s.store.FindOne(ctx, collection, filter, nil)
	if err != nil {
		s.logger.Error("Failed to look up document",
			zap.String("collection", collection),
			zap.Any("filter", filter),
			zap.Error(err),
		)
		return false, errors.ErrDatabaseError
	}
	return found, nil
}

// insert вставляет документ; нарушение уникального индекса превращается в тот же конфликт, что и у предпроверки
func (s intakeStore) insert(ctx context.Context, collection string, doc interface{}, conflict string) (interface{}, error) {
	id, err := s.store.InsertOne(ctx, collection, doc)
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Info("Duplicate key on insert",
				zap.String("collection", collection),
				zap.String("conflict", conflict),
			)
			return nil, errors.NewConflict(conflict)
		}
		s.logger.Error("Failed to insert document",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}
	return id, nil
}

// ack собирает подтверждение; ObjectID отдаётся строкой
func ack(message, idKey string, id interface{}) *dto.Ack {
	return &dto.Ack{Message: message, IDKey: idKey, ID: renderID(id)}
}

func renderID(id interface{}) interface{} {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case *primitive.ObjectID:
		return v.Hex()
	default:
		return v
	}
}

// toGeoPoint вызывается после валидации: оба элемента на месте и не nil
func toGeoPoint(in *dto.LocationInput) domain.GeoPoint {
	return domain.NewGeoPoint(*in.Coordinates[0], *in.Coordinates[1])
}
