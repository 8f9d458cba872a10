package main

// @title Incident Intake API
// @version 1.0.0
// @description Приём обращений граждан, справочников районов и типов, оповещений и контактов поддержки.
// @description Каждый эндпоинт проверяет тело запроса, ссылки и уникальность, затем выполняет одну вставку.

// @contact.name API Support

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/incident-intake/docs"
	"github.com/incident-intake/internal/config"
	httpDelivery "github.com/incident-intake/internal/delivery/http"
	"github.com/incident-intake/internal/delivery/http/handler"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/logger"
	"github.com/incident-intake/internal/repository/filestore"
	"github.com/incident-intake/internal/repository/mongodb"
	"github.com/incident-intake/internal/repository/redis"
	"github.com/incident-intake/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Incident Intake")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("sequence_backend", cfg.Sequence.Backend),
	)

	// 3. Connect to MongoDB
	mongoDB, err := mongodb.New(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	log.Info("MongoDB connected", zap.String("database", cfg.Mongo.Database))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	// 4. Sequence backend for support contact ids
	var (
		sequenceRepo repository.SequenceRepository
		redisClient  *redis.Redis
	)
	switch cfg.Sequence.Backend {
	case config.SequenceBackendRedis:
		redisClient, err = redis.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		sequenceRepo = redisClient.Sequences()
	default:
		sequenceRepo = mongodb.NewSequenceRepository(mongoDB)
	}

	// 5. Initialize Repositories
	store := mongodb.NewDocumentStore(mongoDB)

	fileStorage, err := filestore.NewDirStorage(cfg.Upload.Dir, log)
	if err != nil {
		log.Fatal("Failed to prepare upload storage", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	userUC := usecase.NewUserUseCase(store, log)
	areaUC := usecase.NewAreaUseCase(store, log)
	incidentTypeUC := usecase.NewIncidentTypeUseCase(store, log)
	incidentUC := usecase.NewIncidentUseCase(store, log)
	alertUC := usecase.NewAlertUseCase(store, log)
	supportContactUC := usecase.NewSupportContactUseCase(store, sequenceRepo, log)
	uploadUC := usecase.NewUploadUseCase(fileStorage, cfg.Upload.BaseURL, cfg.Upload.MaxFileSize, log)

	if err := supportContactUC.InitSequence(ctx); err != nil {
		log.Fatal("Failed to seed support contact sequence", zap.Error(err))
	}

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	userHandler := handler.NewUserHandler(userUC, log)
	areaHandler := handler.NewAreaHandler(areaUC, incidentTypeUC, log)
	incidentHandler := handler.NewIncidentHandler(incidentUC, log)
	notificationHandler := handler.NewNotificationHandler(alertUC, supportContactUC, log)
	uploadHandler := handler.NewUploadHandler(uploadUC, log)
	healthHandler := handler.NewHealthHandler(store, cfg.Mongo.Timeout, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		userHandler,
		areaHandler,
		incidentHandler,
		notificationHandler,
		uploadHandler,
		healthHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := mongoDB.Close(shutdownCtx); err != nil {
		log.Error("Failed to close MongoDB", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
