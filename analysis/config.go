// Package analysis applies ordered, named cuts to event batches and
// reports per-cut pass counts and efficiencies.
package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a cut-based analysis: an ordered list of named cut
// expressions.
type Config struct {
	Name string      `yaml:"name"`
	Cuts []CutConfig `yaml:"cuts"`
}

// CutConfig is one named step of the cutflow.
type CutConfig struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// LoadConfig reads and validates an analysis configuration from a YAML
// file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing analysis config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Cuts) == 0 {
		return fmt.Errorf("analysis config must define at least one cut")
	}

	seen := make(map[string]bool, len(c.Cuts))
	for i, cc := range c.Cuts {
		if cc.Name == "" {
			return fmt.Errorf("cut %d has no name", i)
		}
		if cc.Expression == "" {
			return fmt.Errorf("cut %q has no expression", cc.Name)
		}
		if seen[cc.Name] {
			return fmt.Errorf("duplicate cut name %q", cc.Name)
		}
		seen[cc.Name] = true
	}
	return nil
}
