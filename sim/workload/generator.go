package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/schedsim/sim"
)

// IntRange is an inclusive [Min, Max] range of integer values.
type IntRange struct {
	Min int64 `yaml:"min" json:"min"`
	Max int64 `yaml:"max" json:"max"`
}

// Sample draws uniformly from the range.
func (r IntRange) Sample(rng *rand.Rand) int64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}

func (r IntRange) validate(name string, floor int64) error {
	if r.Min < floor {
		return fmt.Errorf("%s min must be >= %d, got %d", name, floor, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s max (%d) must be >= min (%d)", name, r.Max, r.Min)
	}
	return nil
}

// Default sampling ranges shared by the generator and the procfs sampler.
var (
	DefaultBurstRange   = IntRange{Min: 2, Max: 10}
	DefaultArrivalRange = IntRange{Min: 0, Max: 15}
)

// GeneratorConfig describes a synthetic process set.
type GeneratorConfig struct {
	Count    int      `yaml:"count" json:"count"`
	Burst    IntRange `yaml:"burst" json:"burst"`
	Arrival  IntRange `yaml:"arrival" json:"arrival"`
	Priority IntRange `yaml:"priority" json:"priority"`
}

// DefaultGeneratorConfig returns a ten-process configuration with the
// default burst, arrival and priority ranges.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:    10,
		Burst:    DefaultBurstRange,
		Arrival:  DefaultArrivalRange,
		Priority: IntRange{Min: 1, Max: 10},
	}
}

// Validate checks that every range yields values the simulator accepts.
func (c GeneratorConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", c.Count)
	}
	if err := c.Burst.validate("burst", 1); err != nil {
		return err
	}
	if err := c.Arrival.validate("arrival", 0); err != nil {
		return err
	}
	return c.Priority.validate("priority", 1)
}

// Generate creates cfg.Count processes named P1..Pn.
// Deterministic given the same config and rng state.
func Generate(cfg GeneratorConfig, rng *rand.Rand) ([]sim.ProcessSpec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	specs := make([]sim.ProcessSpec, cfg.Count)
	for i := range specs {
		specs[i] = sim.ProcessSpec{
			PID:         fmt.Sprintf("P%d", i+1),
			PPID:        "0",
			BurstTime:   cfg.Burst.Sample(rng),
			ArrivalTime: cfg.Arrival.Sample(rng),
			Priority:    cfg.Priority.Sample(rng),
		}
	}
	return specs, nil
}

// GenerateSeeded draws from the workload subsystem of a partitioned RNG
// keyed by seed.
func GenerateSeeded(cfg GeneratorConfig, seed int64) ([]sim.ProcessSpec, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	return Generate(cfg, rng.ForSubsystem(sim.SubsystemWorkload))
}
