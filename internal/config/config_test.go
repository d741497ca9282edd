package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Currency.DefaultSymbol = "$"
	cfg.Thresholds.High = 25_000
	cfg.RunLog.Path = "audit/runs.csv"

	path := filepath.Join(t.TempDir(), "tickmark.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "$", got.Currency.DefaultSymbol)
	assert.InDelta(t, 25_000, got.Thresholds.High, 0.001)
	assert.InDelta(t, 1_000, got.Thresholds.Medium, 0.001)
	assert.Equal(t, "jsonfile", got.Extraction.Producer)
	assert.True(t, got.RunLog.Enabled)
	assert.Equal(t, "audit/runs.csv", got.RunLog.Path)
	assert.Equal(t, ":8080", got.Server.Listen)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "RM", cfg.Currency.DefaultSymbol)
	assert.InDelta(t, 10_000, cfg.Thresholds.High, 0.001)
	assert.InDelta(t, 1_000, cfg.Thresholds.Medium, 0.001)
	assert.Equal(t, "jsonfile", cfg.Extraction.Producer)
	assert.Equal(t, "logs/runs.csv", cfg.RunLog.Path)
}

func TestSeverityThresholds(t *testing.T) {
	cfg := Default()
	th := cfg.SeverityThresholds()
	assert.True(t, th.High.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, th.Medium.Equal(decimal.NewFromInt(1_000)))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "tickmark.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "default_symbol: RM")
	assert.Contains(t, contents, "producer: jsonfile")
	assert.Contains(t, contents, "high: 10000")
	assert.Contains(t, contents, ":8080")
}
