package mongodb

import (
	"context"
	"fmt"

	"github.com/incident-intake/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const countersCollection = "counters"

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

type sequenceRepository struct {
	db *DB
}

// NewSequenceRepository - счётчики в коллекции counters, инкремент атомарен на стороне Mongo
func NewSequenceRepository(db *DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		r.db.logger.Error("Failed to increment sequence",
			zap.String("sequence", name),
			zap.Error(err))
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}

	return c.Seq, nil
}

func (r *sequenceRepository) Seed(ctx context.Context, name string, floor int64) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	_, err := r.db.Collection(countersCollection).UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"seq": floor}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.db.logger.Error("Failed to seed sequence",
			zap.String("sequence", name),
			zap.Int64("floor", floor),
			zap.Error(err))
		return fmt.Errorf("seed sequence %s: %w", name, err)
	}

	r.db.logger.Info("Sequence seeded",
		zap.String("sequence", name),
		zap.Int64("floor", floor))
	return nil
}
