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
	cfg.DataFile = "data/march.json"
	cfg.RulesFile = "rules.toml"
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "budgetwise.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Empty(t, cfg.RulesFile)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: other.json\nlog:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.DataFile)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "$", cfg.CurrencySymbol)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unterminated\n"), 0o644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDataFile: "/tmp/b.json",
		EnvLogLevel: "debug",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/b.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset variables leave values alone")
	assert.Empty(t, cfg.RulesFile)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetwise.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "data_file: budget_data.json")
	assert.Contains(t, contents, "level: info")
	assert.NotContains(t, contents, "rules_file")
}
