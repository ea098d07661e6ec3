// Package config loads pokegrid configuration from YAML and environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"pokegrid/pkg/api"
)

// Config is the top-level pokegrid configuration, corresponding to
// pokegrid.yml.
type Config struct {
	// BaseURL is the catalog API root.
	BaseURL string `yaml:"base_url" koanf:"base_url"`

	// UserAgent sent with every API request.
	UserAgent string `yaml:"user_agent" koanf:"user_agent"`

	// PageSize is the number of entities per page.
	PageSize int `yaml:"page_size" koanf:"page_size"`

	// MaxConcurrency bounds simultaneous detail fetches in a batch.
	MaxConcurrency int `yaml:"max_concurrency" koanf:"max_concurrency"`

	// Sort is the initial sort key (id-asc, id-desc, name-asc, name-desc).
	Sort string `yaml:"sort" koanf:"sort"`

	// Category preselects a category filter at startup.
	Category string `yaml:"category" koanf:"category"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" koanf:"log_level"`

	// LogFile receives structured logs; empty discards them (the terminal
	// belongs to the UI).
	LogFile string `yaml:"log_file" koanf:"log_file"`

	// MetricsAddr, when set (e.g. "127.0.0.1:9190"), serves Prometheus
	// metrics on /metrics.
	MetricsAddr string `yaml:"metrics_addr" koanf:"metrics_addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        api.DefaultBaseURL,
		UserAgent:      "pokegrid/0.1.0",
		PageSize:       24,
		MaxConcurrency: 12,
		Sort:           "id-asc",
		LogLevel:       "info",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (POKEGRID_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: POKEGRID_PAGE_SIZE -> page_size, etc.
	if err := k.Load(env.Provider("POKEGRID_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "POKEGRID_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user_agent is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive (got %d)", c.PageSize)
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive (got %d)", c.MaxConcurrency)
	}
	return nil
}
