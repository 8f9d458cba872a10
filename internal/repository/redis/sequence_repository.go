package redis

import (
	"context"
	"fmt"

	"github.com/incident-intake/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sequenceKeyPrefix = "seq:"

// seedScript поднимает счётчик до ARGV[1], но никогда не опускает его
var seedScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if current < floor then
	redis.call('SET', KEYS[1], floor)
	return floor
end
return current
`)

// sequenceRepository - счётчики на INCR, альтернатива коллекции counters в Mongo. Создаётся через Redis.Sequences
type sequenceRepository struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

var _ repository.SequenceRepository = (*sequenceRepository)(nil)

func (r *sequenceRepository) key(name string) string {
	return r.keyPrefix + name
}

func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	v, err := r.client.Incr(ctx, r.key(name)).Result()
	if err != nil {
		r.logger.Error("Failed to increment sequence",
			zap.String("sequence", name),
			zap.Error(err))
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return v, nil
}

func (r *sequenceRepository) Seed(ctx context.Context, name string, floor int64) error {
	v, err := seedScript.Run(ctx, r.client, []string{r.key(name)}, floor).Int64()
	if err != nil {
		r.logger.Error("Failed to seed sequence",
			zap.String("sequence", name),
			zap.Int64("floor", floor),
			zap.Error(err))
		return fmt.Errorf("seed sequence %s: %w", name, err)
	}

	r.logger.Info("Sequence seeded",
		zap.String("sequence", name),
		zap.Int64("floor", floor),
		zap.Int64("current", v))
	return nil
}
