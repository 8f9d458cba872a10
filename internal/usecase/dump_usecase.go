package usecase

import (
	"context"
	"time"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/usecase/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DumpUseCase - выгрузка всех коллекций для отладки и переноса данных
type DumpUseCase struct {
	repo     repository.DumpRepository
	database string
	limit    int64
	now      func() time.Time
	logger   *zap.Logger
}

func NewDumpUseCase(repo repository.DumpRepository, database string, limit int64, logger *zap.Logger) *DumpUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DumpUseCase{
		repo:     repo,
		database: database,
		limit:    limit,
		now:      time.Now,
		logger:   logger,
	}
}

// Dump читает каждую коллекцию; ошибка одной коллекции записывается в её раздел и не прерывает выгрузку
func (uc *DumpUseCase) Dump(ctx context.Context) *dto.Dump {
	out := &dto.Dump{
		GeneratedAt: uc.now().UTC().Format(time.RFC3339Nano),
		Database:    uc.database,
		Collections: make(map[string]*dto.CollectionDump, len(domain.Collections)),
	}

	for _, name := range domain.Collections {
		count, docs, err := uc.repo.ReadCollection(ctx, name, uc.limit)
		if err != nil {
			uc.logger.Error("Failed to dump collection",
				zap.String("collection", name),
				zap.Error(err),
			)
			out.Collections[name] = &dto.CollectionDump{
				Documents: []map[string]interface{}{},
				Error:     err.Error(),
			}
			continue
		}

		rendered := make([]map[string]interface{}, 0, len(docs))
		for _, doc := range docs {
			rendered = append(rendered, plainDocument(doc))
		}
		out.Collections[name] = &dto.CollectionDump{
			Count:     count,
			Documents: rendered,
		}

		uc.logger.Info("Collection dumped",
			zap.String("collection", name),
			zap.Int64("count", count),
			zap.Int("dumped", len(rendered)),
		)
	}

	return out
}

// plainDocument заменяет ObjectID на hex строки на любой глубине
func plainDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case bson.M:
		return plainDocument(val)
	case map[string]interface{}:
		return plainDocument(val)
	case bson.D:
		return plainDocument(val.Map())
	case bson.A:
		return plainSlice(val)
	case []interface{}:
		return plainSlice(val)
	default:
		return v
	}
}

func plainSlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, item := range in {
		out[i] = plainValue(item)
	}
	return out
}
