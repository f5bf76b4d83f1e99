package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"txn-dashboard/internal/api"
	"txn-dashboard/internal/api/handlers"
	"txn-dashboard/internal/repository"
	"txn-dashboard/internal/repository/memory"
	"txn-dashboard/internal/service"
	"txn-dashboard/pkg/config"
	"txn-dashboard/pkg/logger"
	"txn-dashboard/pkg/postgres"

	"go.uber.org/zap"
)

// @title Transaction Dashboard API
// @version 1.0
// @description Read-only queries over seeded sale transactions: listing, statistics, price histogram and category breakdown.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting transaction dashboard service", zap.String("store", cfg.Store.Driver))

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open transaction store", zap.Error(err))
	}
	defer closeStore()

	feed := service.NewFeedClient(&cfg.Feed, logger.Component("feed"))
	txService := service.NewTransactionService(store, feed, logger.Component("transactions"))

	if cfg.Seed.OnStartup {
		// Requests served before this finishes see an empty store.
		go func() {
			result, err := txService.Seed(ctx)
			if err != nil {
				appLogger.Error("Startup seed failed", zap.Error(err))
				return
			}
			appLogger.Info(result.Message(), zap.Int("inserted", result.Inserted))
		}()
	}

	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	app := api.SetupRouter(txHandler, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// openStore builds the configured transaction store. For PostgreSQL it
// applies migrations before opening the pool.
func openStore(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (service.TransactionStore, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		appLogger.Warn("Using in-memory transaction store; data is lost on restart")
		return memory.New(), func() {}, nil
	}

	if err := postgres.RunMigrations(&cfg.Database, appLogger); err != nil {
		return nil, nil, err
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		return nil, nil, err
	}

	return repository.NewTransactionRepository(db, logger.Component("repository")), db.Close, nil
}
