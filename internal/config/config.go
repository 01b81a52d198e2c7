package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Backend selects the persistence implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	SeasonWeeks  int
	PollInterval time.Duration
	CORSOrigins  []string
	ESPN         ESPNConfig
	Persist      PersistConfig
	Metrics      MetricsConfig
}

// ESPNConfig configures the upstream scoreboard client.
type ESPNConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// PersistConfig selects and configures the persistence backend.
type PersistConfig struct {
	Backend       Backend
	SnapshotDir   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// MetricsConfig configures the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from a .env file (when present) and the
// environment, with sensible defaults.
func Load() Config {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		SeasonWeeks:  intEnvOrDefault(envSeasonWeeks, defaultSeasonWeeks),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, []string{"*"}),
		ESPN: ESPNConfig{
			BaseURL:   envOrDefault(envESPNBaseURL, ""),
			Timeout:   durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
			UserAgent: envOrDefault(envESPNUserAgent, ""),
		},
		Persist: PersistConfig{
			Backend:       parseBackend(envOrDefault(envPersistBackend, string(defaultBackend))),
			SnapshotDir:   envOrDefault(envSnapshotDir, defaultSnapshotDir),
			RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			RedisPassword: envOrDefault(envRedisPassword, ""),
			RedisDB:       intEnvOrDefault(envRedisDB, 0),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
		},
	}
}

func parseBackend(raw string) Backend {
	switch Backend(raw) {
	case BackendRedis:
		return BackendRedis
	case BackendMemory:
		return BackendMemory
	default:
		return BackendFile
	}
}
