package config

import (
	"flag"
	"os"
	"time"

	"github.com/AlistairHeus/feed-assignment/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the sqlite database file (default from Config)
//	-t int      artificial auth delay in milliseconds (default from Config)
//	-f string   log format, "text" or "json" (default from Config)
//
// The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	authDelay := fs.Int("t", int(cfg.AuthDelay.Milliseconds()), "auth delay (in milliseconds)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthDelay = time.Duration(*authDelay) * time.Millisecond
}
