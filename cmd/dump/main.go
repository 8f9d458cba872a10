package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/incident-intake/internal/config"
	"github.com/incident-intake/internal/pkg/logger"
	"github.com/incident-intake/internal/repository/mongodb"
	"github.com/incident-intake/internal/usecase"
	"go.uber.org/zap"
)

// Выгрузка всех коллекций в JSON файл (DUMP_OUTPUT_FILE, не более DUMP_LIMIT документов на коллекцию)
func main() {
	os.Exit(run())
}

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

	mongoDB, err := mongodb.New(&cfg.Mongo, log)
	if err != nil {
		log.Error("Failed to connect to MongoDB", zap.Error(err))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dumpUC := usecase.NewDumpUseCase(mongodb.NewDumpRepository(mongoDB), cfg.Mongo.Database, cfg.Dump.Limit, log)
	dump := dumpUC.Dump(ctx)

	if err := mongoDB.Close(ctx); err != nil {
		log.Error("Failed to close MongoDB", zap.Error(err))
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		log.Error("Failed to encode dump", zap.Error(err))
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Dump.OutputFile), 0o755); err != nil {
		log.Error("Failed to create output directory", zap.Error(err))
		return 1
	}
	if err := os.WriteFile(cfg.Dump.OutputFile, data, 0o644); err != nil {
		log.Error("Failed to write dump", zap.Error(err))
		return 1
	}

	log.Info("Dump written",
		zap.String("file", cfg.Dump.OutputFile),
		zap.Int("collections", len(dump.Collections)),
	)
	return 0
}
