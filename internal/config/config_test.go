package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/home/u/.confplan")

	assert.Equal(t, "Asia/Kuching", cfg.Timezone)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, filepath.Join("/home/u/.confplan", "catalog.db"), cfg.Store)
	assert.Empty(t, cfg.Catalog)
	assert.False(t, cfg.UseStore)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	cfg, err := Load(path, DefaultConfig(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "missing config must not be written")
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog: tracks/**/*.yaml
use_store: true
log_level: DEBUG
`), 0o600))

	cfg, err := Load(path, DefaultConfig("/data"))
	require.NoError(t, err)
	assert.Equal(t, "tracks/**/*.yaml", cfg.Catalog)
	assert.True(t, cfg.UseStore)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/data", "catalog.db"), cfg.Store, "unset keys keep defaults")
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [unterminated\n"), 0o600))

	_, err := Load(path, DefaultConfig(""))
	assert.ErrorContains(t, err, "parsing config")
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig("/data")
	ApplyEnv(&cfg, envMap(map[string]string{
		"CONFPLAN_CATALOG":    "schedule.json",
		"CONFPLAN_STORE":      "/tmp/c.db",
		"CONFPLAN_USE_STORE":  "1",
		"CONFPLAN_TIMEZONE":   "UTC",
		"CONFPLAN_LOG_LEVEL":  "WARN",
		"CONFPLAN_LOG_FORMAT": "json",
		"CONFPLAN_LOG_FILE":   "/tmp/confplan.log",
	}))

	assert.Equal(t, Config{
		Catalog:   "schedule.json",
		Store:     "/tmp/c.db",
		UseStore:  true,
		Timezone:  "UTC",
		LogLevel:  "warn",
		LogFormat: "json",
		LogFile:   "/tmp/confplan.log",
	}, cfg)
}

func TestApplyEnv_IgnoresBadBool(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.UseStore = true
	ApplyEnv(&cfg, envMap(map[string]string{"CONFPLAN_USE_STORE": "maybe"}))
	assert.True(t, cfg.UseStore)
}

func TestValidate_AggregatesProblems(t *testing.T) {
	cfg := Config{Timezone: "Mars/Olympus", LogLevel: "loud", LogFormat: "xml", UseStore: true}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "timezone")
	assert.Contains(t, msg, "log_level")
	assert.Contains(t, msg, "log_format")
	assert.Contains(t, msg, "use_store")
}

func TestLoadConfig_ExplicitPathAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: UTC\n"), 0o600))
	t.Setenv("CONFPLAN_LOG_LEVEL", "error")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "error", cfg.LogLevel)
}
