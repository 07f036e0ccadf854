package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim/trace"
)

// AgingConfig parameterizes aging: every Interval ticks of waiting moves a
// process's effective value by Step in its favour.
// A nil *AgingConfig on an algorithm means aging is disabled.
type AgingConfig struct {
	Interval int64 `yaml:"interval" json:"interval"`
	Step     int64 `yaml:"step" json:"step"`
}

// DefaultAgingConfig returns the interval/step pair used when none is configured.
func DefaultAgingConfig() *AgingConfig {
	return &AgingConfig{Interval: 2, Step: 1}
}

// Validate checks that interval and step are both positive.
func (a *AgingConfig) Validate() error {
	if a.Interval < 1 {
		return fmt.Errorf("aging interval must be >= 1, got %d", a.Interval)
	}
	if a.Step < 1 {
		return fmt.Errorf("aging step must be >= 1, got %d", a.Step)
	}
	return nil
}

// Adjustment returns how far a process that has waited wait ticks has aged.
// Formula: (wait / Interval) * Step, integer division.
func (a *AgingConfig) Adjustment(wait int64) int64 {
	if wait <= 0 {
		return 0
	}
	return (wait / a.Interval) * a.Step
}

// Priority computes the priority-family effective value.
// Formula: base + Adjustment(wait). Monotonically non-decreasing in wait.
func (a *AgingConfig) Priority(base, wait int64) int64 {
	return base + a.Adjustment(wait)
}

// Time computes the shortest-time-family effective value.
// Formula: max(0, base - Adjustment(wait)). Never negative.
func (a *AgingConfig) Time(base, wait int64) int64 {
	return max(0, base-a.Adjustment(wait))
}

// WaitDuration returns how long p has been ready but not running at clock:
// (clock - arrival) - executed.
func WaitDuration(p *Process, clock, executed int64) int64 {
	return (clock - p.ArrivalTime) - executed
}

// agePriority recomputes p.EffectivePriority from OriginalPriority and records
// the change, if any, in the aging trace.
func (s *Scheduler) agePriority(cfg *AgingConfig, p *Process, executed int64) {
	wait := WaitDuration(p, s.Clock, executed)
	old := p.EffectivePriority
	p.EffectivePriority = cfg.Priority(p.OriginalPriority, wait)
	if p.EffectivePriority != old {
		s.recordAging(p, trace.FamilyPriority, old, p.EffectivePriority, wait)
	}
}

// ageTime recomputes p.EffectiveTime from base and records the change, if any,
// in the aging trace.
func (s *Scheduler) ageTime(cfg *AgingConfig, p *Process, base, executed int64) {
	wait := WaitDuration(p, s.Clock, executed)
	old := p.EffectiveTime
	p.EffectiveTime = cfg.Time(base, wait)
	if p.EffectiveTime != old {
		s.recordAging(p, trace.FamilyTime, old, p.EffectiveTime, wait)
	}
}

func (s *Scheduler) recordAging(p *Process, family trace.ValueFamily, from, to, wait int64) {
	logrus.Tracef("[tick %07d] aging %s: %s %d -> %d (waited %d)", s.Clock, p.PID, family, from, to, wait)
	s.Trace.Record(trace.AgingRecord{
		Time:   s.Clock,
		PID:    p.PID,
		Family: family,
		Old:    from,
		New:    to,
		Waited: wait,
	})
}
