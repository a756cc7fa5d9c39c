package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdle      = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvRunMigrations      = "RUN_MIGRATIONS"
)

// Defaults
const (
	DefaultPort               = "3000"
	DefaultEnvironment        = "dev"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultServiceName        = "joyas-api"
	DefaultVersion            = "dev"
	DefaultDBUser             = "postgres"
	DefaultDBPassword         = "postgres"
	DefaultDBHost             = "localhost"
	DefaultDBPort             = "5432"
	DefaultDBName             = "joyas"
	DefaultDBMaxConns         = 10
	DefaultDBMaxConnIdle      = 5 * time.Minute
	DefaultDBMaxConnLifetime  = time.Hour
	DefaultCORSAllowedOrigins = "*"
)

// Warning messages returned by Config.Warnings
const (
	WarnMsgDefaultDBPassword = "DB_PASSWORD is the development default outside dev"
	WarnMsgWildcardCORS      = "CORS_ALLOWED_ORIGINS allows every origin outside dev"
	WarnMsgMigrationsInProd  = "RUN_MIGRATIONS is enabled in production; the inventario table is normally owned elsewhere"
)
