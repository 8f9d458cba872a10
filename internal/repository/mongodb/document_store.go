package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/incident-intake/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type documentStore struct {
	db *DB
}

func NewDocumentStore(db *DB) repository.DocumentStore {
	return &documentStore{db: db}
}

func (s *documentStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) (bool, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res := s.db.Collection(collection).FindOne(ctx, filter)

	// при out == nil нужен только факт наличия документа
	err := res.Err()
	if err == nil && out != nil {
		err = res.Decode(out)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		s.db.logger.Error("Failed to find document",
			zap.String("collection", collection),
			zap.Any("filter", filter),
			zap.Error(err))
		return false, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return true, nil
}

func (s *documentStore) InsertOne(ctx context.Context, collection string, doc interface{}) (interface{}, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		s.db.logger.Debug("Duplicate key on insert",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, repository.ErrDuplicateKey
	}
	if err != nil {
		s.db.logger.Error("Failed to insert document",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	s.db.logger.Debug("Document inserted",
		zap.String("collection", collection),
		zap.Any("id", res.InsertedID))
	return res.InsertedID, nil
}

func (s *documentStore) FindLast(ctx context.Context, collection, sortField string, out interface{}) (bool, error) {
	ctx, cancel := s.db.withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: sortField, Value: -1}})
	res := s.db.Collection(collection).FindOne(ctx, bson.M{}, opts)

	err := res.Err()
	if err == nil && out != nil {
		err = res.Decode(out)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		s.db.logger.Error("Failed to find last document",
			zap.String("collection", collection),
			zap.String("sort_field", sortField),
			zap.Error(err))
		return false, fmt.Errorf("find last in %s: %w", collection, err)
	}
	return true, nil
}

func (s *documentStore) Health(ctx context.Context) error {
	return s.db.Health(ctx)
}
