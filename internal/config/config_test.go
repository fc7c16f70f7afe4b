package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.TLS())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.False(t, cfg.Calc.ClampConeTip)
	assert.Equal(t, 0.4, cfg.Calc.DefaultFrictionCoefficient)
	assert.Equal(t, 1000, cfg.Batch.MaxItems)
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	yml := `
server:
  addr: ":9443"
  tlsCert: server.crt
  tlsKey: server.key
  shutdownTimeout: 10s
logLevel: debug
calc:
  clampConeTip: true
batch:
  maxItems: 50
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hammerforce.yaml"), []byte(yml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9443", cfg.Server.Addr)
	assert.True(t, cfg.Server.TLS())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Calc.ClampConeTip)
	assert.Equal(t, 50, cfg.Batch.MaxItems)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HAMMERFORCE_LOGLEVEL", "warn")
	t.Setenv("HAMMERFORCE_RATELIMIT_BURST", "3")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Cleanup(func() { os.Unsetenv("HAMMERFORCE_SERVER_ADDR") })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HAMMERFORCE_SERVER_ADDR=:7070\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_InvalidFrictionCoefficient(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HAMMERFORCE_CALC_DEFAULTFRICTIONCOEFFICIENT", "0")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "defaultFrictionCoefficient")
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hammerforce.yaml"), []byte("server: [\n"), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "error reading config file")
}
