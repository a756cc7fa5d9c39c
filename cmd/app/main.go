package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/JoyasAPI_Go/internal/bootstrap"
	"github.com/osse101/JoyasAPI_Go/internal/config"
	"github.com/osse101/JoyasAPI_Go/internal/database/postgres"
	"github.com/osse101/JoyasAPI_Go/internal/inventory"
	"github.com/osse101/JoyasAPI_Go/internal/server"
)

// @title Joyas API
// @version 1.0
// @description Read-only jewelry inventory API with paginated listings and attribute filters.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingService,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)
	bootstrap.LogConfigWarnings(cfg)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), bootstrap.StartupTimeout)
	dbPool, err := bootstrap.InitDatabase(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		slog.Error("Database initialization failed", "error", err)
		os.Exit(1)
	}

	inventoryService := inventory.NewService(postgres.NewInventoryRepository(dbPool))
	srv := server.NewServer(cfg.Port, cfg.CORSAllowedOrigins, cfg.Version, dbPool, inventoryService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
