package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Tables.Path)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PORT", "")

	body := "server:\n  port: \"9000\"\n  write_timeout: 10s\nlog:\n  level: debug\n  format: console\nmetrics:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payroll.yaml"), []byte(body), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PAYROLL_LOG_LEVEL", "warn")
	t.Setenv("PAYROLL_TABLES_PATH", "/srv/tables.yaml")
	t.Setenv("PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/srv/tables.yaml", cfg.Tables.Path)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PAYROLL_LOG_FORMAT", "xml")
	_, err = Load("")
	assert.ErrorContains(t, err, "log.format")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
