// Package config provides configuration management for the trial worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingTrialsSource      = errors.New("feed.trials_url or feed.trials_file is required")
	ErrMissingCountrySource     = errors.New("feed.country_url or feed.country_file is required")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidOutputFormat      = errors.New("output.format must be 'json' or 'jsonl'")
	ErrMissingIndexAddresses    = errors.New("index.addresses is required when indexing is enabled")
	ErrMissingIndexName         = errors.New("index.name is required when indexing is enabled")
	ErrInvalidBulkBatchSize     = errors.New("index.bulk_batch_size must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Default source locations.
const (
	DefaultTrialsURL  = "https://www.who.int/ictrp/COVID19-web.csv"
	DefaultCountryURL = "https://raw.githubusercontent.com/flaneuse/clinical_trials/master/naturalearth_countries.csv"
	DefaultMappingURL = "https://raw.githubusercontent.com/SuLab/outbreak.info-resources/master/outbreak_resources_es_mapping.json"

	// DefaultExcludedRegistry is the one registry outside WHO-side
	// reconciliation; its rows are dropped before normalization.
	DefaultExcludedRegistry = "ClinicalTrials.gov"
)

// Config represents the complete worker configuration.
type Config struct {
	Feed    FeedConfig    `yaml:"feed"`
	Retry   RetryPolicy   `yaml:"retry"`
	Output  OutputConfig  `yaml:"output"`
	Index   IndexConfig   `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
}

// FeedConfig locates the ICTRP export and the country reference.
// Either a URL or a local file may be given for each; the file wins.
type FeedConfig struct {
	TrialsURL        string `yaml:"trials_url"`
	TrialsFile       string `yaml:"trials_file"`
	CountryURL       string `yaml:"country_url"`
	CountryFile      string `yaml:"country_file"`
	ExcludedRegistry string `yaml:"excluded_registry"`
}

// RetryPolicy defines retry behavior for feed fetches.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// OutputConfig defines local document output behavior.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// IndexConfig defines the OpenSearch document sink.
type IndexConfig struct {
	Enabled       bool     `yaml:"enabled"`
	Addresses     []string `yaml:"addresses"`
	Username      string   `yaml:"username"`
	Password      string   `yaml:"password"`
	Name          string   `yaml:"name"`
	MappingURL    string   `yaml:"mapping_url"`
	BulkBatchSize int      `yaml:"bulk_batch_size"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration pointing at the public sources.
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			TrialsURL:        DefaultTrialsURL,
			CountryURL:       DefaultCountryURL,
			ExcludedRegistry: DefaultExcludedRegistry,
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        60,
		},
		Output: OutputConfig{
			Path:   "trials.json",
			Format: "json",
		},
		Index: IndexConfig{
			MappingURL:    DefaultMappingURL,
			BulkBatchSize: 500,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML file on top of defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Feed.TrialsURL == "" && c.Feed.TrialsFile == "" {
		return ErrMissingTrialsSource
	}

	if c.Feed.CountryURL == "" && c.Feed.CountryFile == "" {
		return ErrMissingCountrySource
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Format != "json" && c.Output.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	if c.Index.Enabled {
		if len(c.Index.Addresses) == 0 {
			return ErrMissingIndexAddresses
		}

		if c.Index.Name == "" {
			return ErrMissingIndexName
		}
	}

	if c.Index.BulkBatchSize < 1 {
		return ErrInvalidBulkBatchSize
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Trials: %s, MaxAttempts: %d, Output: %s}",
		c.Feed.TrialsURL,
		c.Retry.MaxAttempts,
		c.Output.Path,
	)
}
