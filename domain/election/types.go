// Package election models the roster consumed by the election-simulation
// composite: named entities carrying an electoral-vote weight and a win
// probability.
package election

import (
	"fmt"

	"simlab/domain/core"
)

// Entity is one weighted participant (a state, a district, a precinct).
type Entity struct {
	Name    string  `json:"name"`
	Votes   int     `json:"votes"`
	WinProb float64 `json:"win_prob"`
}

// Validate rejects negative weights and out-of-range probabilities.
func (e Entity) Validate() error {
	if e.Votes < 0 {
		return fmt.Errorf("entity %q: %w", e.Name, core.NewCountError("votes", e.Votes))
	}
	if e.WinProb < 0 || e.WinProb > 1 || e.WinProb != e.WinProb {
		return fmt.Errorf("entity %q: %w", e.Name, core.NewProbabilityError("win_prob", e.WinProb))
	}
	return nil
}

// Roster is the full set of entities contested in one simulated election.
type Roster []Entity

// Validate checks the roster is non-empty and every entity is well formed.
// Nothing is sampled until the whole roster passes.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return core.ErrEmptyRoster
	}
	for _, e := range r {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TotalVotes returns the sum of all entity weights.
func (r Roster) TotalVotes() int {
	total := 0
	for _, e := range r {
		total += e.Votes
	}
	return total
}
