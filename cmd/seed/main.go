package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"txn-dashboard/internal/repository"
	"txn-dashboard/internal/service"
	"txn-dashboard/pkg/config"
	"txn-dashboard/pkg/logger"
	"txn-dashboard/pkg/postgres"

	"go.uber.org/zap"
)

// seed loads the product feed into PostgreSQL once and exits. With -force
// the current contents are replaced even when the store is populated.
func main() {
	force := flag.Bool("force", false, "replace existing transactions with a fresh feed snapshot")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txRepo := repository.NewTransactionRepository(db, appLogger)
	feed := service.NewFeedClient(&cfg.Feed, appLogger)
	txService := service.NewTransactionService(txRepo, feed, appLogger)

	appLogger.Info("Starting database seeding...", zap.Bool("force", *force), zap.String("feed", cfg.Feed.URL))

	seed := txService.Seed
	if *force {
		seed = txService.Reseed
	}

	result, err := seed(ctx)
	if err != nil {
		appLogger.Fatal("Database seeding failed", zap.Error(err))
	}

	appLogger.Info(result.Message(), zap.Int("inserted", result.Inserted))
}
