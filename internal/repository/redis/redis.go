package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/incident-intake/internal/config"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// Redis - подключение для счётчиков идентификаторов; все ключи сервиса живут под keyPrefix
type Redis struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedis - подключение с проверкой доступности
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("key_prefix", cfg.KeyPrefix),
	)

	return NewFromClient(client, cfg.KeyPrefix, logger), nil
}

// NewFromClient - обёртка над готовым клиентом (тесты, общий пул)
func NewFromClient(client *redis.Client, keyPrefix string, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// Key - полное имя ключа с префиксом сервиса
func (r *Redis) Key(parts ...string) string {
	key := r.keyPrefix
	for _, p := range parts {
		key += p
	}
	return key
}

// Sequences - счётчики на INCR под ключами <prefix>seq:<имя>
func (r *Redis) Sequences() repository.SequenceRepository {
	return &sequenceRepository{
		client:    r.client,
		keyPrefix: r.Key(sequenceKeyPrefix),
		logger:    r.logger,
	}
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}
