package sim

import (
	"fmt"
	"sort"
)

// Algorithm names accepted by NewAlgorithm and the CLI.
const (
	AlgorithmFCFS                  = "fcfs"
	AlgorithmSJF                   = "sjf"
	AlgorithmSRTF                  = "srtf"
	AlgorithmRoundRobin            = "round-robin"
	AlgorithmPriorityPreemptive    = "priority-preemptive"
	AlgorithmPriorityNonPreemptive = "priority-non-preemptive"
)

// Algorithm is a closed set of scheduling disciplines, each carrying its own
// parameters. The unexported schedule method keeps the set closed: the six
// variants below are the only implementations.
type Algorithm interface {
	// Name returns the canonical algorithm name.
	Name() string
	// AgingConfig returns the aging parameters, or nil when aging is disabled.
	AgingConfig() *AgingConfig
	schedule(s *Scheduler)
}

// validAlgorithms maps accepted names (including aliases) to canonical names.
var validAlgorithms = map[string]string{
	AlgorithmFCFS:                  AlgorithmFCFS,
	AlgorithmSJF:                   AlgorithmSJF,
	AlgorithmSRTF:                  AlgorithmSRTF,
	AlgorithmRoundRobin:            AlgorithmRoundRobin,
	"rr":                           AlgorithmRoundRobin,
	AlgorithmPriorityPreemptive:    AlgorithmPriorityPreemptive,
	AlgorithmPriorityNonPreemptive: AlgorithmPriorityNonPreemptive,
}

var displayNames = map[string]string{
	AlgorithmFCFS:                  "FCFS",
	AlgorithmSJF:                   "SJF (Non-Preemptive)",
	AlgorithmSRTF:                  "SRTF (Preemptive SJF)",
	AlgorithmRoundRobin:            "Round Robin",
	AlgorithmPriorityPreemptive:    "Priority (Preemptive)",
	AlgorithmPriorityNonPreemptive: "Priority (Non-Preemptive)",
}

// IsValidAlgorithm returns true if name is a recognized algorithm name or alias.
func IsValidAlgorithm(name string) bool {
	_, ok := validAlgorithms[name]
	return ok
}

// CanonicalAlgorithm resolves aliases ("rr") to canonical names.
// Returns "" for unknown names.
func CanonicalAlgorithm(name string) string {
	return validAlgorithms[name]
}

// AlgorithmNames returns the canonical algorithm names, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(displayNames))
	for name := range displayNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName returns the human-readable label of a canonical algorithm name.
func DisplayName(name string) string {
	if label, ok := displayNames[CanonicalAlgorithm(name)]; ok {
		return label
	}
	return name
}

// SupportsAging reports whether the named algorithm has an aging variant.
// FCFS is the only discipline without one.
func SupportsAging(name string) bool {
	canonical := CanonicalAlgorithm(name)
	return canonical != "" && canonical != AlgorithmFCFS
}

// NewAlgorithm creates an Algorithm by name.
// quantum is only used by round-robin; aging is ignored by fcfs.
// Panics on unrecognized names; callers validate with IsValidAlgorithm first.
func NewAlgorithm(name string, quantum int64, aging *AgingConfig) Algorithm {
	if !IsValidAlgorithm(name) {
		panic(fmt.Sprintf("unknown algorithm %q", name))
	}
	switch CanonicalAlgorithm(name) {
	case AlgorithmFCFS:
		return FCFS{}
	case AlgorithmSJF:
		return SJF{Aging: aging}
	case AlgorithmSRTF:
		return SRTF{Aging: aging}
	case AlgorithmRoundRobin:
		return RoundRobin{Quantum: quantum, Aging: aging}
	case AlgorithmPriorityPreemptive:
		return PriorityPreemptive{Aging: aging}
	case AlgorithmPriorityNonPreemptive:
		return PriorityNonPreemptive{Aging: aging}
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", name))
	}
}

// WithAging returns a copy of alg with aging set to cfg (nil disables aging).
// FCFS is returned unchanged.
func WithAging(alg Algorithm, cfg *AgingConfig) Algorithm {
	switch a := alg.(type) {
	case SJF:
		a.Aging = cfg
		return a
	case SRTF:
		a.Aging = cfg
		return a
	case RoundRobin:
		a.Aging = cfg
		return a
	case PriorityPreemptive:
		a.Aging = cfg
		return a
	case PriorityNonPreemptive:
		a.Aging = cfg
		return a
	default:
		return alg
	}
}
