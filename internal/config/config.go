// Package config loads bpmdash settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvAPIEndpoint = "BPMDASH_API_ENDPOINT"
	EnvLogLevel    = "BPMDASH_LOG_LEVEL"
)

// Config holds all bpmdash configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// APIConfig configures the metrics API. An empty endpoint means sample data.
type APIConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TokenFile string `yaml:"token_file"`
	Timeout   string `yaml:"timeout"` // Go duration, e.g. "15s"
}

// StorageConfig configures where chart preferences are kept.
type StorageConfig struct {
	PreferencesPath string `yaml:"preferences_path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

// DashboardConfig configures the terminal dashboard.
type DashboardConfig struct {
	ChartHeight int      `yaml:"chart_height"`
	Roles       []string `yaml:"roles"`
}

// Default chart region height in rows.
const DefaultChartHeight = 12

// minChartHeight keeps room for axis labels and at least a few plot rows.
const minChartHeight = 6

// Dir returns the bpmdash configuration directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bpmdash")
	}
	return ".bpmdash"
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout: "15s",
		},
		Storage: StorageConfig{
			PreferencesPath: filepath.Join(Dir(), "preferences.json"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Dashboard: DashboardConfig{
			ChartHeight: DefaultChartHeight,
			Roles:       []string{"viewer"},
		},
	}
}

// Load reads the config at path on top of the defaults. A missing file is not
// an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIEndpoint); v != "" {
		c.API.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if _, err := c.API.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Dashboard.ChartHeight < minChartHeight {
		return fmt.Errorf("dashboard.chart_height must be at least %d, got %d", minChartHeight, c.Dashboard.ChartHeight)
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value means zero (client default).
func (a APIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api.timeout %q: %w", a.Timeout, err)
	}
	return d, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
