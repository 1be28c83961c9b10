package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/qt.db
quality:
  default_alert_threshold: "4.25"
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/qt.db", cfg.Database.GetDSN())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Quality.CodeRetryAttempts)

	threshold, err := cfg.Quality.DefaultThreshold()
	require.NoError(t, err)
	assert.Equal(t, "4.25", threshold.StringFixed(2))
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("QUALITRACK_SERVER_PORT", "9100")
	t.Setenv("QUALITRACK_DATABASE_DRIVER", "postgres")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_RejectsUnknownDriversAndBadThreshold(t *testing.T) {
	_, err := Load("", writeConfig(t, "database:\n  driver: oracle\n"))
	assert.ErrorContains(t, err, "database.driver")

	_, err = Load("", writeConfig(t, "storage:\n  driver: s3\n"))
	assert.ErrorContains(t, err, "storage.driver")

	_, err = Load("", writeConfig(t, "quality:\n  default_alert_threshold: cinco\n"))
	assert.ErrorContains(t, err, "default_alert_threshold")
}
