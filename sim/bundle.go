package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig holds the run configuration, loadable from a YAML file.
// Zero values are filled from DefaultSimConfig by LoadSimConfig.
type SimConfig struct {
	Algorithm           string         `yaml:"algorithm" json:"algorithm"`
	TimeQuantum         int64          `yaml:"time_quantum" json:"time_quantum"`
	StarvationThreshold int64          `yaml:"starvation_threshold" json:"starvation_threshold"`
	Aging               AgingSelection `yaml:"aging" json:"aging"`
}

// AgingSelection toggles aging and carries its parameters.
type AgingSelection struct {
	Enabled  bool  `yaml:"enabled" json:"enabled"`
	Interval int64 `yaml:"interval" json:"interval"`
	Step     int64 `yaml:"step" json:"step"`
}

// DefaultSimConfig returns the configuration used when nothing is specified.
func DefaultSimConfig() SimConfig {
	aging := DefaultAgingConfig()
	return SimConfig{
		Algorithm:           AlgorithmFCFS,
		TimeQuantum:         2,
		StarvationThreshold: 10,
		Aging:               AgingSelection{Enabled: false, Interval: aging.Interval, Step: aging.Step},
	}
}

// LoadSimConfig reads and parses a YAML run configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	cfg := DefaultSimConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the algorithm name and every parameter range.
func (c *SimConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("unknown algorithm %q; valid: %v", c.Algorithm, AlgorithmNames())
	}
	if c.TimeQuantum < 1 {
		return fmt.Errorf("time_quantum must be >= 1, got %d", c.TimeQuantum)
	}
	if c.StarvationThreshold < 1 {
		return fmt.Errorf("starvation_threshold must be >= 1, got %d", c.StarvationThreshold)
	}
	// Parameters are checked even when aging is off: compare runs the aged
	// variant regardless of Enabled.
	return c.Parameters().Validate()
}

// AgingConfig returns the aging parameters, or nil when aging is disabled.
func (c *SimConfig) AgingConfig() *AgingConfig {
	if !c.Aging.Enabled {
		return nil
	}
	return &AgingConfig{Interval: c.Aging.Interval, Step: c.Aging.Step}
}

// Parameters returns the aging parameters regardless of the Enabled flag,
// for callers that need both variants (see CompareAging).
func (c *SimConfig) Parameters() *AgingConfig {
	return &AgingConfig{Interval: c.Aging.Interval, Step: c.Aging.Step}
}

// NewAlgorithm builds the configured Algorithm. Call Validate first.
func (c *SimConfig) NewAlgorithm() Algorithm {
	return NewAlgorithm(c.Algorithm, c.TimeQuantum, c.AgingConfig())
}
