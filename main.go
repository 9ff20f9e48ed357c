// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"usuarios-api/cmd"
	"usuarios-api/internal/data/repository"
	"usuarios-api/internal/wire"
	"usuarios-api/pkg/database"
	"usuarios-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database, logger, config.App.Debug)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Buat tabel Roles dan Usuarios bila belum ada
	if config.Database.AutoMigrate {
		if err := database.Migrate(db.Gorm); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database migrated")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db.Gorm, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, config, logger)

	// Stop on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTimeout := time.Duration(config.HTTP.ShutdownTimeoutSeconds) * time.Second
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, shutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
