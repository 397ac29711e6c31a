package montecarlo

import (
	"fmt"

	"golang.org/x/exp/rand"

	"simlab/domain/core"
	"simlab/domain/election"
	"simlab/internal/sampler"
)

// ElectionConfig describes the election composite trial: every entity runs
// its own block of Bernoulli draws, and the entity's votes count toward the
// trial result when its successes strictly exceed the decision threshold.
type ElectionConfig struct {
	Roster election.Roster

	// DrawsPerEntity is the per-entity Bernoulli draw count per trial.
	DrawsPerEntity int

	// Threshold is the decision threshold on per-entity successes.
	// Zero means the default: exactly half of DrawsPerEntity. The win
	// comparison is strictly greater than, applied uniformly.
	Threshold float64
}

func (cfg ElectionConfig) threshold() float64 {
	if cfg.Threshold == 0 {
		return float64(cfg.DrawsPerEntity) / 2
	}
	return cfg.Threshold
}

// NewElectionTrial validates the configuration and returns the composite
// trial. One trial draws a Binomial outcome per entity and returns the summed
// votes of entities whose successes strictly exceed the threshold.
func NewElectionTrial(cfg ElectionConfig) (TrialFunc, error) {
	if err := cfg.Roster.Validate(); err != nil {
		return nil, err
	}
	if cfg.DrawsPerEntity < 1 {
		return nil, fmt.Errorf("%w: draws_per_entity=%d (need at least 1)", core.ErrInvalidParameter, cfg.DrawsPerEntity)
	}

	roster := cfg.Roster
	draws := cfg.DrawsPerEntity
	threshold := cfg.threshold()

	return func(_ int, src *rand.Rand) (float64, error) {
		votes := 0
		for _, e := range roster {
			successes, err := sampler.Binomial(src, 1, draws, e.WinProb)
			if err != nil {
				return 0, err
			}
			if float64(successes[0]) > threshold {
				votes += e.Votes
			}
		}
		return float64(votes), nil
	}, nil
}
