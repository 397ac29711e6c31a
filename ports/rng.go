package ports

import "golang.org/x/exp/rand"

// RNGPort provides seeded random number generation for deterministic operations.
// Every sampling call in the codebase draws from a stream obtained here; no
// component touches a process-wide generator.
type RNGPort interface {
	// SeededStream creates a deterministic random stream for a named operation.
	// The same (name, seed) pair always yields the same draw sequence.
	SeededStream(name string, seed uint64) *rand.Rand

	// TrialStream derives an independent sub-stream for one Monte Carlo trial
	// from the master seed. Derivation depends only on (seed, trial), so a
	// parallel run reproduces the sequential run exactly.
	TrialStream(seed uint64, trial int) *rand.Rand
}
