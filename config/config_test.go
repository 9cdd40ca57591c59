package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	}
	t.Setenv("CONFIG_PATH", dir)
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFrom(t, "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8086", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "file", cfg.Data.Backend)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, float64(50), cfg.RateLimit.RPS)
	assert.Equal(t, int64(42), cfg.Provider.Seed)
	assert.False(t, cfg.Publisher.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Publisher.Interval)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := loadFrom(t, `
server:
  host: 127.0.0.1
  port: 9000
  mode: debug
data:
  dir: /tmp/suite-data
  backend: database
database:
  driver: postgres
  dsn: host=localhost user=postgres dbname=suite
redis:
  enabled: true
  addr: localhost:6380
  ttl: 90s
log:
  level: debug
  format: console
provider:
  seed: 7
publisher:
  enabled: true
  interval: 10s
`)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "database", cfg.Data.Backend)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, int64(7), cfg.Provider.Seed)
	assert.True(t, cfg.Publisher.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Publisher.Interval)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SOCIAL_SUITE_SERVER_PORT", "7070")
	t.Setenv("SOCIAL_SUITE_LOG_LEVEL", "warn")

	cfg, err := loadFrom(t, "")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := loadFrom(t, "server:\n  mode: turbo\n")
	assert.ErrorContains(t, err, "validate config")

	_, err = loadFrom(t, "data:\n  backend: s3\n")
	assert.ErrorContains(t, err, "validate config")

	_, err = loadFrom(t, "log:\n  level: loud\n")
	assert.ErrorContains(t, err, "validate config")
}
