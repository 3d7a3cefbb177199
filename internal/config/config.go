// Package config provides configuration management for the scraper worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidDelay      = errors.New("scraper.politeness_delay_ms must be non-negative")
	ErrInvalidTimeout    = errors.New("scraper.timeout_sec must be at least 1")
	ErrInvalidWorkers    = errors.New("scraper.workers must be at least 1")
	ErrInvalidBufferSize = errors.New("scraper.buffer_size_kb must be at least 1")
	ErrMissingUserAgent  = errors.New("scraper.user_agent is required")
	ErrMissingOutputPath = errors.New("output.path is required")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// DefaultUserAgent identifies the scraper as a desktop browser; the
// target site blocks unidentified clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:54.0) Gecko/20100101 Firefox/54.0"

// Config represents the complete scraper configuration.
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ScraperConfig contains fetch and extraction settings.
type ScraperConfig struct {
	UserAgent         string `yaml:"user_agent"`
	PolitenessDelayMs int    `yaml:"politeness_delay_ms"`
	TimeoutSec        int    `yaml:"timeout_sec"`
	Workers           int    `yaml:"workers"`
	BufferSizeKb      int    `yaml:"buffer_size_kb"`
}

// OutputConfig defines where and how the record set is written.
type OutputConfig struct {
	Path      string `yaml:"path"`
	Overwrite bool   `yaml:"overwrite"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
	ShowSummary  bool   `yaml:"show_summary"`
}

// MetricsConfig defines the optional prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    string `yaml:"port"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			UserAgent:         DefaultUserAgent,
			PolitenessDelayMs: 2000,
			TimeoutSec:        30,
			Workers:           1,
			BufferSizeKb:      2048,
		},
		Output: OutputConfig{
			Path:      "output_details.csv",
			Overwrite: false,
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
			ShowSummary:  true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    "9090",
		},
	}
}

// LoadConfig loads configuration from a YAML file, applies environment
// overrides and validates the result.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides selected values from the environment. A .env file
// in the working directory is honoured if present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("SCRAPER_USER_AGENT"); v != "" {
		c.Scraper.UserAgent = v
	}

	if v := os.Getenv("SCRAPER_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Scraper.PolitenessDelayMs = ms
		}
	}

	if v := os.Getenv("SCRAPER_OUTPUT_PATH"); v != "" {
		c.Output.Path = v
	}

	if v := os.Getenv("METRICS_PORT"); v != "" {
		c.Metrics.Port = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scraper.PolitenessDelayMs < 0 {
		return ErrInvalidDelay
	}

	if c.Scraper.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Scraper.Workers < 1 {
		return ErrInvalidWorkers
	}

	if c.Scraper.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Scraper.UserAgent == "" {
		return ErrMissingUserAgent
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// PolitenessDelay returns the blocking wait applied before each request.
func (c *Config) PolitenessDelay() time.Duration {
	return time.Duration(c.Scraper.PolitenessDelayMs) * time.Millisecond
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Delay: %dms, Timeout: %ds, Workers: %d, Output: %s}",
		c.Scraper.PolitenessDelayMs,
		c.Scraper.TimeoutSec,
		c.Scraper.Workers,
		c.Output.Path,
	)
}
