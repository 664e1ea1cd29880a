package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "budgetwise.yaml"

// DefaultDataFile is the budget file used when none is configured.
const DefaultDataFile = "budget_data.json"

// Config represents the top-level budgetwise.yaml configuration.
type Config struct {
	DataFile       string    `yaml:"data_file"`
	RulesFile      string    `yaml:"rules_file,omitempty"`
	CurrencySymbol string    `yaml:"currency_symbol"`
	Log            LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // "console" or "json"
}

// Load reads a budgetwise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataFile:       DefaultDataFile,
		CurrencySymbol: "$",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Environment variables that override file settings.
const (
	EnvDataFile  = "BUDGETWISE_DATA_FILE"
	EnvRulesFile = "BUDGETWISE_RULES_FILE"
	EnvLogLevel  = "BUDGETWISE_LOG_LEVEL"
	EnvLogFormat = "BUDGETWISE_LOG_FORMAT"
)

// ApplyEnv overrides settings from non-empty environment values.
func (c *Config) ApplyEnv(getenv func(string) string) {
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvDataFile, &c.DataFile},
		{EnvRulesFile, &c.RulesFile},
		{EnvLogLevel, &c.Log.Level},
		{EnvLogFormat, &c.Log.Format},
	}
	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}
