package config

import "time"

const (
	envPort             = "PORT"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envDatabaseURL      = "DATABASE_URL"
	envDatabaseMaxConns = "DATABASE_MAX_CONNS"
	envRosterSource     = "ROSTER_SOURCE"
	envRosterFile       = "ROSTER_FILE"
	envRosterRefresh    = "ROSTER_REFRESH_INTERVAL"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort             = "4000"
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultDatabaseMaxConns = 20
	defaultRosterSource     = "file"
	defaultRosterFile       = "data/roster.json"
	// Roster churn is slow; refreshing more often just hammers the database.
	defaultRosterRefresh = 15 * Duration(time.Minute)
	defaultMetricsPort   = "9090"
)
