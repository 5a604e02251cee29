// Package docgen is the public API for turning a HAR capture into a
// Markdown documentation tree.
package docgen

import (
	"fmt"
)

// Config holds all generator configuration.
type Config struct {
	// Path to the HAR capture to read
	HARPath string `json:"har_path" yaml:"har_path"`

	// Literal URL prefix selecting the API under documentation
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Directory the Markdown tree is written to
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Optional path for a JSON inventory of the extracted endpoints
	JSONPath string `json:"json_path" yaml:"json_path"`

	// Pretty-print the JSON inventory
	JSONPretty bool `json:"json_pretty" yaml:"json_pretty"`

	// Verbose logging
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Debug mode
	Debug bool `json:"debug" yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		JSONPretty: true,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.HARPath == "" {
		return fmt.Errorf("HAR file path is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	return nil
}
