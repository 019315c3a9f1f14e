package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with values from BACKOFFICE_* environment variables.
// Variables that are not set leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(err)
	}
}
