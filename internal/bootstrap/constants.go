package bootstrap

import "time"

// ShutdownTimeout bounds graceful shutdown after a signal
const ShutdownTimeout = 10 * time.Second

// StartupTimeout bounds connecting to the database and migrating
const StartupTimeout = 30 * time.Second

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgStartingService   = "Starting Joyas API"
	LogMsgMigrationsSkipped = "Skipping bundled migrations (RUN_MIGRATIONS=false)"

	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedRunMigrations   = "failed to run migrations"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabasePool  = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
