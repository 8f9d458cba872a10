package mongodb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/incident-intake/internal/config"
	"github.com/incident-intake/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DB - общий на весь процесс клиент Mongo, создаётся один раз при старте
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	timeout  time.Duration
	logger   *zap.Logger
}

func New(cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	start := time.Now()
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("MongoDB connected",
		zap.String("uri", redactURI(cfg.URI)),
		zap.String("database", cfg.Database),
		zap.Duration("took", time.Since(start).Round(time.Millisecond)),
	)

	return NewFromDatabase(client.Database(cfg.Database), cfg.Timeout, logger), nil
}

// NewFromDatabase оборачивает уже открытую базу (используется в тестах с mtest)
func NewFromDatabase(database *mongo.Database, timeout time.Duration, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &DB{
		client:   database.Client(),
		database: database,
		timeout:  timeout,
		logger:   logger,
	}
}

func (db *DB) Close(ctx context.Context) error {
	db.logger.Info("Closing MongoDB connection")
	return db.client.Disconnect(ctx)
}

func (db *DB) Health(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// withTimeout ограничивает каждую операцию с хранилищем
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.timeout)
}

// uniqueIndexes - ограничения уникальности, которые хранилище проверяет само, а не только приложение
var uniqueIndexes = []struct {
	collection string
	name       string
	keys       bson.D
}{
	{domain.CollectionUsers, "uniq_email", bson.D{{Key: "email", Value: 1}}},
	{domain.CollectionUserAreas, "uniq_user_area", bson.D{{Key: "user_id", Value: 1}, {Key: "area_id", Value: 1}}},
	{domain.CollectionIncidentVotes, "uniq_incident_user", bson.D{{Key: "incident_id", Value: 1}, {Key: "user_id", Value: 1}}},
}

// EnsureIndexes создаёт уникальные индексы; уже существующие индексы не ошибка
func (db *DB) EnsureIndexes(ctx context.Context) error {
	var errs []string
	for _, idx := range uniqueIndexes {
		model := mongo.IndexModel{
			Keys:    idx.keys,
			Options: options.Index().SetName(idx.name).SetUnique(true),
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			db.logger.Warn("Failed to create index",
				zap.String("collection", idx.collection),
				zap.String("index", idx.name),
				zap.Error(err))
			errs = append(errs, idx.collection+"."+idx.name+": "+err.Error())
			continue
		}
		db.logger.Debug("Index ensured",
			zap.String("collection", idx.collection),
			zap.String("index", idx.name))
	}

	if len(errs) > 0 {
		return fmt.Errorf("index creation: %s", strings.Join(errs, "; "))
	}
	return nil
}

func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
