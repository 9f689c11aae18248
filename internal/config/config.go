// Package config assembles runtime settings for the casefile client.
// Sources are overlaid in order: built-in defaults, a .env file, process
// environment variables, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the casefile CLI.
//
// Fields:
//   - BaseURL: base endpoint of the case API; all resource paths are
//     relative to it.
//   - StorageDSN: sqlite DSN (usually a file path) for the local session
//     database.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	BaseURL        string
	StorageDSN     string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.StorageDSN = "casefile.db"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a .env file, the environment, and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
