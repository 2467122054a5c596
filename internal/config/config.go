// Package config assembles runtime settings for the foo-rum CLI from
// defaults, an optional JSON file, and command-line flags, in that
// order of precedence.
package config

import (
	"time"

	"github.com/AlistairHeus/feed-assignment/internal/session"
)

// Config holds runtime settings for the foo-rum CLI.
//
// Fields:
//   - DatabasePath: sqlite file backing the local key-value store.
//   - AuthDelay: artificial latency applied to login/signup.
//   - LogFormat: "text" (slog) or "json" (zap).
type Config struct {
	DatabasePath string
	AuthDelay    time.Duration
	LogFormat    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "foorum.db"
	c.AuthDelay = session.DefaultAuthDelay
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
