// Package config provides configuration management for the converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidDelimiter = errors.New("converter.delimiter must be a single character")
	ErrEmptySentinel    = errors.New("converter.sentinel must not be empty")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidWorkers   = errors.New("batch.workers must be at least 1")
)

// Config represents the complete converter configuration.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
	Batch     BatchConfig     `yaml:"batch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ConverterConfig contains conversion settings.
type ConverterConfig struct {
	// Delimiter is the CSV field separator, a single character.
	Delimiter string `yaml:"delimiter"`

	// Sentinel replaces empty or missing values during cleaning.
	Sentinel string `yaml:"sentinel"`
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *ConverterConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r
}

// BatchConfig contains directory-conversion settings.
type BatchConfig struct {
	// Workers bounds how many files are converted concurrently.
	Workers int `yaml:"workers"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Converter: ConverterConfig{
			Delimiter: ",",
			Sentinel:  "n/a",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields left unset in
// the file keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Converter.Delimiter) != 1 {
		return ErrInvalidDelimiter
	}

	if c.Converter.Sentinel == "" {
		return ErrEmptySentinel
	}

	if c.Batch.Workers < 1 {
		return ErrInvalidWorkers
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
