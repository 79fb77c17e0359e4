package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two kernels built with the same key and driven by the same commands
// MUST end in identical states.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

const (
	// SubsystemProcessGen draws arrival, burst and priority values for
	// random process creation. Uses the master seed directly.
	SubsystemProcessGen = "process-gen"

	// SubsystemReferences draws synthetic page-reference strings.
	SubsystemReferences = "references"
)

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so drawing page references never shifts the random processes a seed yields.
//
// Derivation formula:
//   - For SubsystemProcessGen: masterSeed
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemProcessGen {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// RandomReferences draws n page numbers in [0, pages) from the references
// subsystem. Returns nil when n or pages is not positive.
func (p *PartitionedRNG) RandomReferences(n, pages int) []int {
	if n <= 0 || pages <= 0 {
		return nil
	}
	rng := p.ForSubsystem(SubsystemReferences)
	refs := make([]int, n)
	for i := range refs {
		refs[i] = rng.Intn(pages)
	}
	return refs
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
