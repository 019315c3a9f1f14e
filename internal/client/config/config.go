// Package config loads runtime settings for the backoffice CLI. Sources are
// applied in order (defaults, JSON file, environment, command-line flags)
// with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the backoffice CLI.
type Config struct {
	// ServerBaseURL is the API root, including the /api prefix.
	ServerBaseURL string `env:"BACKOFFICE_SERVER_URL,overwrite"`
	// RequestTimeout bounds every API call.
	RequestTimeout time.Duration `env:"BACKOFFICE_REQUEST_TIMEOUT,overwrite"`
	// StatePath is the sqlite file holding persisted client state.
	StatePath string `env:"BACKOFFICE_STATE_PATH,overwrite"`
	// LogLevel is the minimum log level: trace, debug, info, warn, error.
	LogLevel string `env:"BACKOFFICE_LOG_LEVEL,overwrite"`
	// LogPretty switches from JSON to human-friendly console output.
	LogPretty bool `env:"BACKOFFICE_LOG_PRETTY,overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.StatePath = "backoffice.db"
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
