package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/confplan/internal/cli"
	"github.com/alexanderramin/confplan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultConfig("")
	cfg.UseStore = true

	applyFlags(&cfg, cli.GlobalFlags{Catalog: "tracks/*.yaml", LogLevel: "DEBUG"})
	assert.Equal(t, "tracks/*.yaml", cfg.Catalog)
	assert.False(t, cfg.UseStore, "an explicit catalog overrides use_store")
	assert.Equal(t, "debug", cfg.LogLevel)

	applyFlags(&cfg, cli.GlobalFlags{UseStore: true})
	assert.True(t, cfg.UseStore)
	assert.Equal(t, "tracks/*.yaml", cfg.Catalog)
}

func TestSetup_WiresStoreForImport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	store := filepath.Join(dir, "store", "catalog.db")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store: "+store+"\ntimezone: UTC\n"), 0o644))

	app := &cli.App{}
	closers, err := setup(context.Background(), app, cli.GlobalFlags{ConfigPath: cfgPath, NeedsStore: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, c := range closers {
			c.Close()
		}
	})

	require.Len(t, closers, 1)
	assert.FileExists(t, store)
	assert.Equal(t, "UTC", app.Location.String())
	assert.NotNil(t, app.Catalogs)
	assert.NotNil(t, app.Logger)
}

func TestSetup_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("timezone: Mars/Olympus\nlog_format: xml\n"), 0o644))

	_, err := setup(context.Background(), &cli.App{}, cli.GlobalFlags{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
	assert.Contains(t, err.Error(), "log_format")
}
