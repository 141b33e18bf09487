package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/repository"
	"jobboard/internal/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	accessLog := logrus.New()
	accessLog.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Database connection
	db, err := repository.Connect(ctx, cfg.MongoURI, cfg.DBName, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.EnsureIndexes(ctx, logger); err != nil {
		logger.Fatal("Failed to ensure database indexes", zap.Error(err))
	}

	// Initialize and run the server
	srv := server.NewServer(db, cfg, logger, accessLog)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("Application stopped.")
}
