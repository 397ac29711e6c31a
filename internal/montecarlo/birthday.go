package montecarlo

import (
	"golang.org/x/exp/rand"

	"simlab/domain/dist"
	"simlab/internal/sampler"
)

// NewBirthdayTrial returns a trial that draws `people` values uniformly from
// [1, days] and reports 1 when at least two coincide, 0 otherwise. Averaged
// over many trials this estimates dist.BirthdayCollisionProbability.
func NewBirthdayTrial(people, days int) (TrialFunc, error) {
	// Same parameter domain as the closed form; reject up front so the first
	// trial cannot fail mid-run.
	if _, err := dist.BirthdayCollisionProbability(people, days); err != nil {
		return nil, err
	}

	return func(_ int, src *rand.Rand) (float64, error) {
		draws, err := sampler.DiscreteUniform(src, people, 1, days)
		if err != nil {
			return 0, err
		}
		seen := make(map[int]struct{}, len(draws))
		for _, d := range draws {
			if _, dup := seen[d]; dup {
				return 1, nil
			}
			seen[d] = struct{}{}
		}
		return 0, nil
	}, nil
}
