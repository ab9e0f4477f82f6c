package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// clearEnv blanks every variable Load reads; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "HOST", "PORT", "ROUTER", "LOG_LEVEL", "LOG_FORMAT",
		"READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "STATS_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Host:            "0.0.0.0",
		Port:            "8000",
		Router:          "chi",
		LogLevel:        "info",
		LogFormat:       "json",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}, cfg)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ROUTER", "mux")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STATS_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mux", cfg.Router)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.StatsInterval)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	clearEnv(t)
	require.NoError(t, os.WriteFile(path, []byte(`
host: 127.0.0.1
port: "8081"
log_format: console
write_timeout: 3s
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8082")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8082", cfg.Addr(), "environment overrides the file")
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Host:            "0.0.0.0",
		Port:            "8000",
		Router:          "chi",
		LogLevel:        "info",
		LogFormat:       "json",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Port = "http"
	bad.Router = "gin"
	bad.LogLevel = "trace"
	bad.StatsInterval = -time.Second

	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 4)
}
