package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/goresult/internal/config"
	"codeberg.org/mutker/goresult/internal/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resultdemo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
db = "/path/to/users.db"
log_level = "error"
cache_ttl = "30s"
`)
	t.Setenv("RESULTDEMO_CONFIG", configPath)

	cfg, err := config.Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "/path/to/users.db", cfg.DBPath, "Expected DBPath from file")
	assert.Equal(t, config.LogLevelError, cfg.LogLevel, "Expected LogLevel error")
	assert.Equal(t, 30*time.Second, cfg.CacheTTL, "Expected CacheTTL 30s")
	assert.False(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	// Ensure no config file is used
	t.Setenv("RESULTDEMO_CONFIG", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultDBPath(), cfg.DBPath)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel warning")
	assert.Equal(t, config.DefaultCacheTTL, cfg.CacheTTL)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configPath := writeConfig(t, `
This is not a valid TOML file
`)

	_, err := config.Load(nil, config.WithConfigFile(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestInvalidLogLevel(t *testing.T) {
	configPath := writeConfig(t, `
log_level = "invalid"
`)

	_, err := config.Load(nil, config.WithConfigFile(configPath))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
	assert.Contains(t, errors.ToErr(err).Code(), "invalid_log_level")
}

func TestLogLevelFlag(t *testing.T) {
	configPath := writeConfig(t, `
log_level = "error"
`)

	cfg, err := config.Load(newFlags(t, "--log-level", "debug"), config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelDebug, cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func TestDebugAndVerboseFlags(t *testing.T) {
	configPath := writeConfig(t, "")

	cfg, err := config.Load(newFlags(t, "--verbose"), config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelInfo, cfg.LogLevel)

	cfg, err = config.Load(newFlags(t, "--debug", "--log-level", "error"), config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, config.LogLevelDebug, cfg.LogLevel)
	assert.True(t, cfg.IsDebug())
}

func TestEnvOverridesFile(t *testing.T) {
	configPath := writeConfig(t, `
db = "/from/file.db"
`)
	t.Setenv("RESULTDEMO_DB", "/from/env.db")

	cfg, err := config.Load(newFlags(t), config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.GetDBPath())

	cfg, err = config.Load(newFlags(t, "--db", "/from/flag.db"), config.WithConfigFile(configPath))
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.GetDBPath())
}

func TestLogLevelIsValid(t *testing.T) {
	assert.True(t, config.LogLevelWarning.IsValid())
	assert.False(t, config.LogLevel("verbose").IsValid())
	assert.Equal(t, "info", config.LogLevelInfo.String())
}
