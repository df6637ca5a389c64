package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Currency = "EUR"
	cfg.ChartPath = "out/pie.png"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "rules.json", got.RulesPath)
	assert.Equal(t, "out/pie.png", got.ChartPath)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Kč", cfg.Currency)
	assert.Equal(t, "rules.json", cfg.RulesPath)
	assert.Equal(t, "expenses.png", cfg.ChartPath)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("currency: USD\n"), 0o644))

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency)
	// Unset fields keep their defaults.
	assert.Equal(t, "rules.json", cfg.RulesPath)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "currency: Kč")
	assert.Contains(t, contents, "rules_path: rules.json")
	assert.Contains(t, contents, "chart_path: expenses.png")
}
