// Package rng implements ports.RNGPort over golang.org/x/exp/rand, whose
// PCG-based sources are cheap to construct per stream and fully determined
// by their seed.
package rng

import (
	"golang.org/x/exp/rand"

	"simlab/ports"
)

// trialStride separates per-trial seeds; odd and long so consecutive trial
// indexes land far apart in seed space (splitmix64 golden-ratio increment).
const trialStride = 0x9E3779B97F4A7C15

// Adapter is the production RNGPort implementation.
type Adapter struct{}

// New creates an RNG adapter.
func New() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random stream for a named operation.
func (a *Adapter) SeededStream(name string, seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed + uint64(hashString(name))))
}

// TrialStream derives an independent sub-stream for one trial of a run.
func (a *Adapter) TrialStream(seed uint64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(seed + uint64(trial)*trialStride))
}

// hashString creates a simple hash for deterministic seeding (djb2).
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c)
	}
	return hash
}

var _ ports.RNGPort = (*Adapter)(nil)
