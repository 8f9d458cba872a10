package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "zaloapp", cfg.Mongo.Database)
	assert.Equal(t, 8*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, SequenceBackendMongo, cfg.Sequence.Backend)
	assert.Equal(t, int64(1000), cfg.Dump.Limit)
	assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
	assert.Nil(t, cfg.Import.IncidentStatuses)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "incident-intake:", cfg.Redis.KeyPrefix)
	assert.Equal(t, "./uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB", "incidents")
	t.Setenv("MONGO_TIMEOUT", "3")
	t.Setenv("SEQUENCE_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("IMPORT_INCIDENT_STATUSES", "sent, processing,,reopened")
	t.Setenv("LEGACY_DB_USER", "legacy")
	t.Setenv("LEGACY_DB_NAME", "incidents_sql")
	t.Setenv("UPLOAD_BASE_URL", "https://cdn.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "incidents", cfg.Mongo.Database)
	assert.Equal(t, 3*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, SequenceBackendRedis, cfg.Sequence.Backend)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, []string{"sent", "processing", "reopened"}, cfg.Import.IncidentStatuses)
	assert.Equal(t,
		"host=localhost port=5432 user=legacy password= dbname=incidents_sql sslmode=disable",
		cfg.GetLegacyDSN())
	assert.Equal(t, "https://cdn.example.com", cfg.Upload.BaseURL)
}

func TestLoad_UnknownSequenceBackend(t *testing.T) {
	t.Setenv("SEQUENCE_BACKEND", "etcd")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEQUENCE_BACKEND")
}

func TestLoad_InvalidMaxFileSize(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_FILE_SIZE")
}
