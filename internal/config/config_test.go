package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DEVTOOLS_LOG_FILE", "")
	t.Setenv("DEVTOOLS_LOG_LEVEL", "")
	t.Setenv("DEVTOOLS_CATALOG", "")
	t.Setenv("DEVTOOLS_ACCESSIBLE", "")
	t.Setenv("ACCESSIBLE", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DEVTOOLS_LOG_LEVEL", "DEBUG")
	t.Setenv("DEVTOOLS_LOG_FILE", "/tmp/devtools.log")
	t.Setenv("ACCESSIBLE", "1")

	cfg, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, LevelDebug, cfg.Log.Level)
	require.Equal(t, "/tmp/devtools.log", cfg.Log.File)
	require.True(t, cfg.Accessible)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "devtools"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devtools", "config.yaml"),
		[]byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	require.Equal(t, LevelWarn, cfg.Log.Level)
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DEVTOOLS_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("log-file", "", "")
	flags.String("catalog", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, LevelError, cfg.Log.Level)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	isolate(t)
	t.Setenv("DEVTOOLS_LOG_LEVEL", "verbose")
	_, err := Load(New())
	require.Error(t, err)
}

func TestLoadRejectsMissingCatalog(t *testing.T) {
	isolate(t)
	t.Setenv("DEVTOOLS_CATALOG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load(New())
	require.Error(t, err)
}
