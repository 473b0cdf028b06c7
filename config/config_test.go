package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(Te *testing.T, text string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "gokin.yaml")
	require.NoError(Te, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadDefaults(Te *testing.T) {
	cfg, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, "127.0.0.1:5000", cfg.Estimator.Addr)
	assert.Equal(Te, 10*time.Second, cfg.Estimator.DialTimeout)
	assert.Equal(Te, 60*time.Second, cfg.Estimator.IdleTimeout)
	assert.Equal(Te, "RMG-Java", cfg.Estimator.Name)
	assert.True(Te, cfg.Estimator.Breaker.Enabled)
	assert.Equal(Te, "info", cfg.Log.Level)
}

func TestLoadFile(Te *testing.T) {
	path := writeFile(Te, `
estimator:
  addr: estimator.local:5001
  idle_timeout: 0s
  dump_dir: /tmp/dumps
  breaker:
    enabled: false
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "estimator.local:5001", cfg.Estimator.Addr)
	assert.Equal(Te, time.Duration(0), cfg.Estimator.IdleTimeout)
	//not in the file
	assert.Equal(Te, 10*time.Second, cfg.Estimator.DialTimeout)
	assert.Equal(Te, "/tmp/dumps", cfg.Estimator.DumpDir)
	assert.False(Te, cfg.Estimator.Breaker.Enabled)
	assert.Equal(Te, uint32(3), cfg.Estimator.Breaker.MinRequests)
	assert.Equal(Te, "debug", cfg.Log.Level)
	assert.True(Te, cfg.Log.Development)
}

func TestLoadEnvironment(Te *testing.T) {
	path := writeFile(Te, "estimator:\n  addr: fromfile:1\n")
	Te.Setenv(EnvEstimatorAddr, "fromenv:2")
	Te.Setenv(EnvEstimatorDialTimeout, "250ms")
	Te.Setenv(EnvEstimatorIdleTimeout, "2m")
	Te.Setenv(EnvLogLevel, "WARN")
	Te.Setenv(EnvDumpDir, "dumps")
	cfg, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, "fromenv:2", cfg.Estimator.Addr)
	assert.Equal(Te, 250*time.Millisecond, cfg.Estimator.DialTimeout)
	assert.Equal(Te, 2*time.Minute, cfg.Estimator.IdleTimeout)
	assert.Equal(Te, "warn", cfg.Log.Level)
	assert.Equal(Te, "dumps", cfg.Estimator.DumpDir)
}

func TestLoadErrors(Te *testing.T) {
	_, err := Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)

	_, err = Load(writeFile(Te, "estimator: [this is not a map"))
	assert.Error(Te, err)

	_, err = Load(writeFile(Te, "estimator:\n  addr: no-port-here\n"))
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "Estimator.Addr")

	_, err = Load(writeFile(Te, "estimator:\n  dial_timeout: 0s\nlog:\n  level: loud\n"))
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "Estimator.DialTimeout")
	assert.Contains(Te, err.Error(), "Log.Level")

	Te.Setenv(EnvEstimatorIdleTimeout, "soon")
	_, err = Load("")
	assert.ErrorContains(Te, err, EnvEstimatorIdleTimeout)
}

func TestNewLogger(Te *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Development: true})
	require.NoError(Te, err)
	assert.True(Te, l.Core().Enabled(-1))
	l, err = NewLogger(LogConfig{Level: "error"})
	require.NoError(Te, err)
	assert.False(Te, l.Core().Enabled(0))
	_, err = NewLogger(LogConfig{Level: "chatty"})
	assert.Error(Te, err)
}
