package mongodb

import (
	"context"
	"fmt"

	"github.com/incident-intake/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type dumpRepository struct {
	db *DB
}

func NewDumpRepository(db *DB) repository.DumpRepository {
	return &dumpRepository{db: db}
}

func (r *dumpRepository) ReadCollection(ctx context.Context, collection string, limit int64) (int64, []bson.M, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	coll := r.db.Collection(collection)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.db.logger.Error("Failed to count documents",
			zap.String("collection", collection),
			zap.Error(err))
		return 0, nil, fmt.Errorf("count %s: %w", collection, err)
	}

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return 0, nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return 0, nil, fmt.Errorf("read %s: %w", collection, err)
	}

	return count, docs, nil
}
