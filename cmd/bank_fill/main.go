package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"examgen/internal/adapter/gateway"
	"examgen/internal/config"
	"examgen/internal/database"
	"examgen/internal/domain"
	"examgen/internal/logger"
	"examgen/internal/repository"
	"examgen/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not up yet
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Get().Info("Bank fill starting up...")

	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(context.Background(), db.DB, cfg.DB.Driver); err != nil {
			logger.Get().Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	questionRepo := repository.NewQuestionDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	modelGateway, err := gateway.FromConfig(cfg.LLM)
	if err != nil {
		logger.Get().Fatal("Failed to create model gateway", zap.Error(err))
	}
	strategy, err := domain.ExtractionStrategyByName(cfg.Generation.Extraction)
	if err != nil {
		logger.Get().Fatal("Invalid extraction strategy", zap.Error(err))
	}

	// Drafts are only useful to the web preview, so no cache here.
	generator := service.NewGenerationService(modelGateway, domain.NewNormalizer(strategy), nil, cfg.Generation)
	fill := service.NewBankFillService(generator, questionRepo, txManager, cfg.Batch, logger.Get())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := fill.Run(ctx)
	if err != nil {
		logger.Get().Error("Bank fill stopped early", zap.Error(err), zap.Int("added", result.Added))
		return
	}
	logger.Get().Info("Bank fill completed",
		zap.Int("subjects", result.Subjects),
		zap.Int("failed_subjects", result.Failed),
		zap.Int("added", result.Added),
	)
}
