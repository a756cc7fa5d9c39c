package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JoyasAPI_Go/internal/config"
	"github.com/osse101/JoyasAPI_Go/internal/database"
)

// InitDatabase opens the connection pool and, when enabled, applies the
// bundled migrations. The pool is closed again if migrations fail.
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if !cfg.RunMigrations {
		slog.Debug(LogMsgMigrationsSkipped)
		return pool, nil
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}
	return pool, nil
}

// LogConfigWarnings reports risky but valid settings at startup
func LogConfigWarnings(cfg *config.Config) {
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}
}
