package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "foorum.db", cfg.DatabasePath)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-d", "/tmp/alt.db", "-t", "10", "-f", "json")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/alt.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_path": "/tmp/from-json.db",
		"auth_delay": "25ms",
		"log_format": "json"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/from-json.db", cfg.DatabasePath)
	assert.Equal(t, 25*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_JsonPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_format": "json"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "foorum.db", cfg.DatabasePath)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path": "/tmp/json.db"}`), 0o600))

	withArgs(t, "-c", path, "-d", "/tmp/flag.db")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
}
