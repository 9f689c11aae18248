package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvBaseURL    = "CASEFILE_API_BASE_URL"
	EnvStorageDSN = "CASEFILE_DB"
	EnvTimeout    = "CASEFILE_TIMEOUT_SECONDS"
	EnvLogLevel   = "CASEFILE_LOG_LEVEL"
)

// parseEnv overlays Config fields from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment keep precedence over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvStorageDSN); v != "" {
		cfg.StorageDSN = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
