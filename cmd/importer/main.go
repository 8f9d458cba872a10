package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/incident-intake/internal/config"
	"github.com/incident-intake/internal/pkg/logger"
	"github.com/incident-intake/internal/repository/mongodb"
	"github.com/incident-intake/internal/repository/postgres"
	"github.com/incident-intake/internal/usecase"
	"go.uber.org/zap"
)

// Импорт данных из унаследованной PostgreSQL базы в MongoDB через конвейер приёма
func main() {
	os.Exit(run())
}

// run возвращает код выхода; отложенные Close и Sync успевают отработать до os.Exit
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	legacyDB, err := postgres.New(&cfg.Legacy, log)
	if err != nil {
		log.Error("Failed to connect to legacy PostgreSQL", zap.Error(err))
		return 1
	}
	defer func() {
		if err := legacyDB.Close(); err != nil {
			log.Error("Failed to close legacy PostgreSQL connection", zap.Error(err))
		}
	}()

	mongoDB, err := mongodb.New(&cfg.Mongo, log)
	if err != nil {
		log.Error("Failed to connect to MongoDB", zap.Error(err))
		return 1
	}
	defer func() {
		if err := mongoDB.Close(context.Background()); err != nil {
			log.Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		log.Error("Failed to ensure indexes", zap.Error(err))
		return 1
	}

	store := mongodb.NewDocumentStore(mongoDB)
	importUC := usecase.NewImportUseCase(
		postgres.NewLegacyRepository(legacyDB),
		usecase.NewUserUseCase(store, log),
		usecase.NewAreaUseCase(store, log),
		usecase.NewIncidentTypeUseCase(store, log),
		usecase.NewIncidentUseCase(store, log),
		cfg.Import.IncidentStatuses,
		log,
	)

	log.Info("Starting legacy import", zap.Strings("incident_statuses", cfg.Import.IncidentStatuses))

	report, err := importUC.Run(ctx)
	if report != nil {
		for name, stats := range report.Collections {
			log.Info("Import summary",
				zap.String("collection", name),
				zap.Int("read", stats.Read),
				zap.Int("imported", stats.Imported),
				zap.Int("skipped", stats.Skipped),
			)
		}
	}
	if err != nil {
		log.Error("Import aborted", zap.Error(err))
		return 1
	}

	log.Info("Import finished")
	return 0
}
