package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/trialbalance/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, int32(-1), cfg.OutputPrecision)
	assert.Empty(t, cfg.MetricsFile)

	policy, err := cfg.LockPolicy()
	require.NoError(t, err)
	assert.Equal(t, domain.LockRejectAll, policy)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOCKED_DEPOSITS", "accept")
	t.Setenv("OUTPUT_PRECISION", "4")
	t.Setenv("METRICS_FILE", "/tmp/trialbalance.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int32(4), cfg.OutputPrecision)
	assert.Equal(t, "/tmp/trialbalance.prom", cfg.MetricsFile)

	policy, err := cfg.LockPolicy()
	require.NoError(t, err)
	assert.Equal(t, domain.LockAcceptDeposits, policy)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("LOCKED_DEPOSITS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	_, err = cfg.LockPolicy()
	assert.Error(t, err)
}

func TestLoad_InvalidPrecision(t *testing.T) {
	t.Setenv("OUTPUT_PRECISION", "four")

	_, err := Load()
	assert.Error(t, err)
}
