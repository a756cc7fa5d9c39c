package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JoyasAPI_Go/internal/database"
)

// httpServer is the part of *server.Server needed for shutdown
type httpServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server httpServer
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight requests can
// finish their queries, then closes the database pool.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabasePool)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
