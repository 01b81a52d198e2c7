package config

import "time"

// Environment variable names.
const (
	envPort           = "PORT"
	envSeasonWeeks    = "SEASON_WEEKS"
	envPollInterval   = "POLL_INTERVAL"
	envCORSOrigins    = "CORS_ORIGINS"
	envESPNBaseURL    = "ESPN_BASE_URL"
	envESPNTimeout    = "ESPN_TIMEOUT"
	envESPNUserAgent  = "ESPN_USER_AGENT"
	envPersistBackend = "PERSIST_BACKEND"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envRedisAddr      = "REDIS_ADDR"
	envRedisPassword  = "REDIS_PASSWORD"
	envRedisDB        = "REDIS_DB"
	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
)

// Defaults.
const (
	defaultPort         = "8080"
	defaultSeasonWeeks  = 18
	defaultPollInterval = time.Duration(0) // disabled
	defaultESPNTimeout  = 15 * time.Second
	defaultBackend      = BackendFile
	defaultSnapshotDir  = "data"
	defaultRedisAddr    = "localhost:6379"
	defaultMetricsPort  = "9090"
)
