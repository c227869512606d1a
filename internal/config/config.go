// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-layout-engine/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Content string `json:"content,omitempty"` // Path to CV content JSON file
	Output  string `json:"output,omitempty"`  // Path to write the layout result JSON (default stdout)
	Schema  string `json:"schema,omitempty"`  // Path to the CV content JSON Schema

	// Layout parameters
	Format          string `json:"format,omitempty"`           // Target format: pdf, letter, web
	Layout          string `json:"layout,omitempty"`           // Explicit layout type (overrides the heuristic)
	ExperienceLevel string `json:"experience_level,omitempty"` // Candidate experience level (heuristic input)
	Industry        string `json:"industry,omitempty"`         // Target industry (heuristic input)

	// Behavior
	Port    int  `json:"port,omitempty"`    // HTTP server port
	Verbose bool `json:"verbose,omitempty"` // Print detailed diagnostics
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: unknown format and layout strings are not errors; they resolve to
// defined fallbacks (A4, single_column) when the engine runs.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Content != "" {
		if _, err := os.Stat(c.Content); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.Content)
		}
	}

	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Content == "" {
		result.Content = defaults.Content
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Layout == "" {
		result.Layout = defaults.Layout
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LayoutType resolves the configured layout string, falling back to
// single_column for empty or unrecognized values.
func (c *Config) LayoutType() types.LayoutType {
	return types.ParseLayoutType(c.Layout)
}
