package config

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/advent/internal/registry"
)

// validOutputs are the accepted values of the output key.
var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputsDir == "" {
		return fmt.Errorf("inputs_dir is required")
	}
	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output %q (allowed: auto, text, markdown, json)", c.Output)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 0, got %d", c.Parallel)
	}
	for _, d := range c.Days {
		if d < registry.FirstDay || d > registry.LastDay {
			return fmt.Errorf("days: %d not in %d..%d", d, registry.FirstDay, registry.LastDay)
		}
	}
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.InputsDir); os.IsNotExist(err) {
		return fmt.Errorf("inputs directory does not exist: %s\nHint: Create the directory or use --inputs-dir to specify a different path", c.InputsDir)
	}
	return nil
}
