package config

import (
	"encoding/json"
	"os"

	"github.com/avendano-dev/backoffice/internal/flagx"
	"github.com/avendano-dev/backoffice/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. timex.Duration
// lets the file specify the timeout either as "15s" or as integer
// nanoseconds. Pointer fields distinguish "absent" from zero values.
type jsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StatePath      *string         `json:"state_path"`
	LogLevel       *string         `json:"log_level"`
	LogPretty      *bool           `json:"log_pretty"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. Without that flag nothing is loaded. Read or parse failures
// panic; the caller decides whether to recover.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StatePath != nil {
		cfg.StatePath = *jc.StatePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogPretty != nil {
		cfg.LogPretty = *jc.LogPretty
	}
}
