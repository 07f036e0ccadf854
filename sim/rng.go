package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed a workload was drawn from. Reusing a key with the
// same generator settings reproduces the same process set.
type SimulationKey int64

// NewSimulationKey wraps seed as a SimulationKey.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams handed out by PartitionedRNG.
const (
	// SubsystemWorkload feeds Generate. It is seeded with the key itself, so
	// a generated workload matches rand.New(rand.NewSource(seed)).
	SubsystemWorkload = "workload"
	// SubsystemSampler draws the burst and arrival times that the process
	// table cannot supply.
	SubsystemSampler = "sampler"
)

// PartitionedRNG gives each named stream its own *rand.Rand so the number of
// draws taken from one stream never changes what another returns.
// Not safe for concurrent use.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG returns an RNG set keyed by key.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: map[string]*rand.Rand{}}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name share one *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.seedFor(name)))
		p.streams[name] = rng
	}
	return rng
}

// seedFor mixes the stream name into the key with FNV-1a, except for the
// workload stream.
func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(p.key) ^ int64(h.Sum64())
}
