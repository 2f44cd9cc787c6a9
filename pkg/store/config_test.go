package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("EOD_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	require.Equal(t, BackendDiskv, cfg.Backend())
	require.Equal(t, "warn", cfg.LogLevel())
	require.Equal(t, "", cfg.AuthorName())
	require.True(t, filepath.IsAbs(cfg.BasePath()), "expected ~ to expand, got %q", cfg.BasePath())
	require.Equal(t, ".eod", filepath.Base(cfg.BasePath()))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EOD_CONFIG_PATH", dir)
	t.Setenv("HOME", t.TempDir())
	yaml := "path: " + filepath.Join(dir, "data") + "\nbackend: sqlite\nname: Alice\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eod.yaml"), []byte(yaml), 0o644))

	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Backend())
	require.Equal(t, "Alice", cfg.AuthorName())
	require.Equal(t, filepath.Join(dir, "data"), cfg.BasePath())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("EOD_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EOD_BACKEND", "memory")
	t.Setenv("EOD_LOG_LEVEL", "debug")

	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Backend())
	require.Equal(t, "debug", cfg.LogLevel())
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("EOD_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EOD_BACKEND", "redis")

	_, err := loadConfig(viper.New())
	require.Error(t, err)
}
