// Package config defines and loads the herodex server configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a setting is absent from file and flags.
const (
	DefaultPort      = 4000
	DefaultPageSize  = 20
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Config is the top-level server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port" yaml:"port"`

	// Dataset is the path to the character dataset file (JSON or YAML).
	Dataset string `json:"dataset" yaml:"dataset"`

	// StaticDir serves a frontend from disk when non-empty.
	StaticDir string `json:"staticDir" yaml:"staticDir"`

	// DefaultPageSize is the page size used when requests carry none.
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`

	// CORSOrigins lists allowed origins; empty means allow all.
	CORSOrigins []string `json:"corsOrigins" yaml:"corsOrigins"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel" yaml:"logLevel"`

	// LogFormat is text or json.
	LogFormat string `json:"logFormat" yaml:"logFormat"`

	// MetricsCollectors enables the default Go/process collectors.
	MetricsCollectors bool `json:"metricsCollectors" yaml:"metricsCollectors"`
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Port:              DefaultPort,
		DefaultPageSize:   DefaultPageSize,
		LogLevel:          DefaultLogLevel,
		LogFormat:         DefaultLogFormat,
		MetricsCollectors: true,
	}
}

// LoadFromFile reads a Config from a JSON or YAML file, with the format
// auto-detected from the extension. Settings absent from the file keep their
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return cfg, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return cfg, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		return cfg, cfg.validate()
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("defaultPageSize must be positive: %d", c.DefaultPageSize)
	}
	return nil
}
