// Package config provides layered configuration for the axiom CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete axiom configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Lint   LintConfig   `yaml:"lint"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	// Format is one of json, yaml, md, term
	Format string `yaml:"format"`
	// Color is auto, always or never; only the term format uses it
	Color string `yaml:"color"`
}

// SiteConfig configures generated links, metadata and sitemaps
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LintConfig holds defaults for the lint command
type LintConfig struct {
	// SeverityThreshold hides findings below info, warn or critical
	SeverityThreshold string `yaml:"severity_threshold"`
	// FailOn is an optional verdict (VALID_WITH_GAPS or INVALID) that makes lint exit 2
	FailOn string `yaml:"fail_on"`
	// Debounce is the quiet period for --watch
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig configures the stderr logger
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "json",
			Color:  "auto",
		},
		Site: SiteConfig{
			BaseURL: "https://axiom.design",
		},
		Lint: LintConfig{
			SeverityThreshold: "info",
			Debounce:          300 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml", "md", "term":
	default:
		return fmt.Errorf("output.format must be json, yaml, md or term, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	switch c.Lint.SeverityThreshold {
	case "info", "warn", "critical":
	default:
		return fmt.Errorf("lint.severity_threshold must be info, warn or critical, got %q", c.Lint.SeverityThreshold)
	}
	switch c.Lint.FailOn {
	case "", "VALID_WITH_GAPS", "INVALID":
	default:
		return fmt.Errorf("lint.fail_on must be VALID_WITH_GAPS or INVALID, got %q", c.Lint.FailOn)
	}
	if c.Lint.Debounce < 0 {
		return fmt.Errorf("lint.debounce must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// LoadFromFile loads a configuration layer from a YAML file. Keys missing
// from the file stay zero so that Merge leaves lower layers untouched.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}

	if other.Site.BaseURL != "" {
		c.Site.BaseURL = other.Site.BaseURL
	}

	if other.Lint.SeverityThreshold != "" {
		c.Lint.SeverityThreshold = other.Lint.SeverityThreshold
	}
	if other.Lint.FailOn != "" {
		c.Lint.FailOn = other.Lint.FailOn
	}
	if other.Lint.Debounce != 0 {
		c.Lint.Debounce = other.Lint.Debounce
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
