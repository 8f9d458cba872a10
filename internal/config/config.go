package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SequenceBackendMongo = "mongo"
	SequenceBackendRedis = "redis"
)

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Sequence SequenceConfig
	Legacy   DatabaseConfig
	Import   ImportConfig
	Dump     DumpConfig
	Upload   UploadConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins []string
}

type MongoConfig struct {
	URI            string
	Database       string
	Timeout        time.Duration
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// SequenceConfig - где хранится счётчик идентификаторов контактов поддержки
type SequenceConfig struct {
	Backend string
}

// DatabaseConfig - унаследованная PostgreSQL база для импорта
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ImportConfig struct {
	IncidentStatuses []string
}

type DumpConfig struct {
	OutputFile string
	Limit      int64
}

// UploadConfig - загрузка изображений; файлы раздаются по BaseURL + /uploads/<имя>
type UploadConfig struct {
	Dir         string
	BaseURL     string
	MaxFileSize int64
}

type LogConfig struct {
	Level string
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8000)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "zaloapp")
	viper.SetDefault("MONGO_TIMEOUT", 8)
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", 15)
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 50)

	viper.SetDefault("SEQUENCE_BACKEND", SequenceBackendMongo)

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_KEY_PREFIX", "incident-intake:")

	viper.SetDefault("LEGACY_DB_HOST", "localhost")
	viper.SetDefault("LEGACY_DB_PORT", 5432)
	viper.SetDefault("LEGACY_DB_SSLMODE", "disable")
	viper.SetDefault("LEGACY_DB_MAX_CONNS", 5)
	viper.SetDefault("LEGACY_DB_MAX_IDLE_CONNS", 2)
	viper.SetDefault("LEGACY_DB_CONN_MAX_LIFETIME", 300)

	viper.SetDefault("DUMP_OUTPUT_FILE", "./data/mongo_dump.json")
	viper.SetDefault("DUMP_LIMIT", 1000)

	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("UPLOAD_BASE_URL", "http://localhost:8000")
	viper.SetDefault("MAX_FILE_SIZE", 5*1024*1024)

	viper.SetDefault("LOG_LEVEL", "info")
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	// .env не обязателен: в контейнере всё приходит через окружение
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: parseList(viper.GetString("CORS_ORIGINS")),
		},
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGO_URI"),
			Database:       viper.GetString("MONGO_DB"),
			Timeout:        time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
			ConnectTimeout: time.Duration(viper.GetInt("MONGO_CONNECT_TIMEOUT")) * time.Second,
			MaxPoolSize:    uint64(viper.GetInt("MONGO_MAX_POOL_SIZE")),
		},
		Redis: RedisConfig{
			Host:      viper.GetString("REDIS_HOST"),
			Port:      viper.GetInt("REDIS_PORT"),
			Password:  viper.GetString("REDIS_PASSWORD"),
			DB:        viper.GetInt("REDIS_DB"),
			KeyPrefix: viper.GetString("REDIS_KEY_PREFIX"),
		},
		Sequence: SequenceConfig{
			Backend: strings.ToLower(viper.GetString("SEQUENCE_BACKEND")),
		},
		Legacy: DatabaseConfig{
			Host:            viper.GetString("LEGACY_DB_HOST"),
			Port:            viper.GetInt("LEGACY_DB_PORT"),
			User:            viper.GetString("LEGACY_DB_USER"),
			Password:        viper.GetString("LEGACY_DB_PASSWORD"),
			DBName:          viper.GetString("LEGACY_DB_NAME"),
			SSLMode:         viper.GetString("LEGACY_DB_SSLMODE"),
			MaxConns:        viper.GetInt("LEGACY_DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("LEGACY_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("LEGACY_DB_CONN_MAX_LIFETIME")) * time.Second,
		},
		Import: ImportConfig{
			IncidentStatuses: parseList(viper.GetString("IMPORT_INCIDENT_STATUSES")),
		},
		Dump: DumpConfig{
			OutputFile: viper.GetString("DUMP_OUTPUT_FILE"),
			Limit:      viper.GetInt64("DUMP_LIMIT"),
		},
		Upload: UploadConfig{
			Dir:         viper.GetString("UPLOAD_DIR"),
			BaseURL:     viper.GetString("UPLOAD_BASE_URL"),
			MaxFileSize: viper.GetInt64("MAX_FILE_SIZE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Sequence.Backend {
	case SequenceBackendMongo, SequenceBackendRedis:
	default:
		return fmt.Errorf("unknown SEQUENCE_BACKEND %q (want %s or %s)",
			c.Sequence.Backend, SequenceBackendMongo, SequenceBackendRedis)
	}
	if c.Mongo.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("MONGO_DB is required")
	}
	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Upload.MaxFileSize)
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetLegacyDSN() string {
	return c.Legacy.DSN()
}

// DSN - строка подключения в формате key=value для pgx
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
