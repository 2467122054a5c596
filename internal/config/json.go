package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AlistairHeus/feed-assignment/internal/flagx"
	"github.com/AlistairHeus/feed-assignment/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so JSON can specify intervals either as
// strings like "500ms" or as integer nanoseconds. After parsing, set
// values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	AuthDelay    timex.Duration `json:"auth_delay"`
	LogFormat    string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); when neither is present no JSON is loaded.
// Read or unmarshal errors panic (caller may recover if desired).
// Only fields actually present in the file override the defaults.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.AuthDelay.Duration != 0 {
		cfg.AuthDelay = time.Duration(jc.AuthDelay.Duration)
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
