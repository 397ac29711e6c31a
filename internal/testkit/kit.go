// Package testkit provides deterministic fixtures for tests and benchmarks:
// a seeded RNG port and a synthetic election roster generator.
package testkit

import (
	"fmt"

	"golang.org/x/exp/rand"

	"simlab/adapters/rng"
	"simlab/domain/election"
	"simlab/ports"
)

// RNG returns the production RNG adapter; it is already fully deterministic,
// so tests share it rather than stubbing their own.
func RNG() ports.RNGPort {
	return rng.New()
}

// RosterGeneratorConfig configures the synthetic roster generator
type RosterGeneratorConfig struct {
	EntityCount int     `json:"entity_count"`
	MinVotes    int     `json:"min_votes"`
	MaxVotes    int     `json:"max_votes"`
	Competitive float64 `json:"competitive"` // share of entities with win_prob near 0.5
	Seed        uint64  `json:"seed"`
}

// DefaultRosterConfig returns sensible defaults for roster generation
func DefaultRosterConfig() RosterGeneratorConfig {
	return RosterGeneratorConfig{
		EntityCount: 50,
		MinVotes:    3,
		MaxVotes:    55,
		Competitive: 0.2,
		Seed:        42,
	}
}

// RosterGenerator generates synthetic election rosters
type RosterGenerator struct {
	config RosterGeneratorConfig
	src    *rand.Rand
}

// NewRosterGenerator creates a roster generator seeded from the config
func NewRosterGenerator(config RosterGeneratorConfig) *RosterGenerator {
	return &RosterGenerator{
		config: config,
		src:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces a roster of EntityCount entities. A Competitive share of
// them get win probabilities in [0.35, 0.65]; the rest lean heavily to one
// side, which is what real electoral maps look like.
func (g *RosterGenerator) Generate() election.Roster {
	roster := make(election.Roster, 0, g.config.EntityCount)
	voteSpan := g.config.MaxVotes - g.config.MinVotes + 1
	for i := 0; i < g.config.EntityCount; i++ {
		var winProb float64
		if g.src.Float64() < g.config.Competitive {
			winProb = 0.35 + g.src.Float64()*0.3
		} else if g.src.Float64() < 0.5 {
			winProb = g.src.Float64() * 0.2
		} else {
			winProb = 0.8 + g.src.Float64()*0.2
		}
		roster = append(roster, election.Entity{
			Name:    fmt.Sprintf("entity-%02d", i+1),
			Votes:   g.config.MinVotes + g.src.Intn(voteSpan),
			WinProb: winProb,
		})
	}
	return roster
}
