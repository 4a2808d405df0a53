package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultRiskFreeRate is the annual risk-free rate applied when the config
// does not set one. Zero is a valid setting, so it is seeded before parsing
// instead of being patched afterwards.
const defaultRiskFreeRate = 0.04

// Config holds all application configuration.
type Config struct {
	Provider struct {
		Name       string `yaml:"name"`
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
		Retry      struct {
			MaxAttempts int `yaml:"max_attempts"`
			BaseDelayMS int `yaml:"base_delay_ms"`
			MaxDelayMS  int `yaml:"max_delay_ms"`
		} `yaml:"retry"`
	} `yaml:"provider"`
	Metrics struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
	} `yaml:"metrics"`
	Output struct {
		Dir         string `yaml:"dir"`
		ChartWidth  int    `yaml:"chart_width"`
		ChartHeight int    `yaml:"chart_height"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// Load reads an optional .env file and a YAML config file, then applies
// environment variable overrides and defaults. A missing config file is
// fine; defaults describe a working setup.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	cfg.Metrics.RiskFreeRate = defaultRiskFreeRate

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROVIDER"); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Provider.TimeoutSec = n
		}
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Metrics.RiskFreeRate = f
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = "yahoo"
	}
	if cfg.Provider.TimeoutSec == 0 {
		cfg.Provider.TimeoutSec = 30
	}
	if cfg.Provider.Retry.MaxAttempts == 0 {
		cfg.Provider.Retry.MaxAttempts = 3
	}
	if cfg.Provider.Retry.BaseDelayMS == 0 {
		cfg.Provider.Retry.BaseDelayMS = 500
	}
	if cfg.Provider.Retry.MaxDelayMS == 0 {
		cfg.Provider.Retry.MaxDelayMS = 5000
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.ChartWidth == 0 {
		cfg.Output.ChartWidth = 1800
	}
	if cfg.Output.ChartHeight == 0 {
		cfg.Output.ChartHeight = 900
	}

	return cfg, nil
}

// Timeout returns the provider HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSec) * time.Second
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "yahoo", "stooq", "mock":
	default:
		return fmt.Errorf("provider.name must be one of yahoo, stooq, mock (got %q)", c.Provider.Name)
	}
	if c.Provider.TimeoutSec <= 0 {
		return fmt.Errorf("provider.timeout_sec must be positive")
	}
	if c.Provider.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("provider.retry.max_attempts must be positive")
	}
	if c.Metrics.RiskFreeRate < -1 || c.Metrics.RiskFreeRate > 1 {
		return fmt.Errorf("metrics.risk_free_rate must be a fraction, e.g. 0.04 for 4%%")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Output.ChartWidth <= 0 || c.Output.ChartHeight <= 0 {
		return fmt.Errorf("output chart dimensions must be positive")
	}
	return nil
}
