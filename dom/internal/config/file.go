// CLAUDE:SUMMARY Defines dom config structs and parses YAML configuration files with defaults.
// Package config handles dom configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level dom configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"` // debug | info | warn | error
	Sanitize string        `yaml:"sanitize"`  // none | ugc | strict
	Journal  JournalConfig `yaml:"journal"`
	Output   OutputConfig  `yaml:"output"`
}

// JournalConfig controls where attach/detach records are flushed.
type JournalConfig struct {
	Sinks  []string `yaml:"sinks"` // stdout | stderr
	PageID string   `yaml:"page_id"`
}

// OutputConfig controls how results are rendered by the CLI.
type OutputConfig struct {
	Format string `yaml:"format"` // html | markdown | text
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values outside the documented enumerations.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	switch c.Sanitize {
	case "none", "ugc", "strict":
	default:
		return fmt.Errorf("config: unknown sanitize policy %q", c.Sanitize)
	}
	switch c.Output.Format {
	case "html", "markdown", "text":
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	for _, s := range c.Journal.Sinks {
		if s != "stdout" && s != "stderr" {
			return fmt.Errorf("config: unknown journal sink %q", s)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Sanitize == "" {
		c.Sanitize = "none"
	}
	if c.Output.Format == "" {
		c.Output.Format = "html"
	}
}
