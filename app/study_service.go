// Package app wires the Monte Carlo engine, RNG port and roster port into
// run-scoped studies: one request in, one identified, reproducible report out.
package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"simlab/domain/core"
	"simlab/domain/dist"
	"simlab/domain/election"
	"simlab/internal"
	"simlab/internal/montecarlo"
	"simlab/ports"
)

// StudyService runs simulation studies with complete seed threading
type StudyService struct {
	runner  *montecarlo.Runner
	roster  ports.RosterPort
	logger  *internal.Logger
	workers int
}

// NewStudyService creates a study service. rosterPort may be nil when every
// election request carries its roster inline. workers <= 0 means one worker
// per CPU for parallel runs.
func NewStudyService(rng ports.RNGPort, rosterPort ports.RosterPort, logger *internal.Logger, workers int) *StudyService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &StudyService{
		runner:  montecarlo.NewRunner(rng),
		roster:  rosterPort,
		logger:  logger,
		workers: workers,
	}
}

// ElectionStudyRequest defines the inputs for a deterministic election study
type ElectionStudyRequest struct {
	// Roster is used when non-empty; otherwise the roster port supplies it.
	Roster         election.Roster
	Trials         int
	Seed           uint64
	DrawsPerEntity int
	// Threshold on per-entity successes; zero means half of DrawsPerEntity.
	Threshold float64
	Parallel  bool
	RunID     core.RunID // optional, generated if empty
}

// ElectionStudyResult contains the complete output of an election study
type ElectionStudyResult struct {
	RunID      core.RunID         `json:"run_id"`
	Seed       uint64             `json:"seed"`
	Trials     int                `json:"trials"`
	TotalVotes int                `json:"total_votes"`
	Summary    montecarlo.Summary `json:"summary"`
	// WinShare is the share of trials whose summed votes strictly exceed
	// half the total votes on the roster.
	WinShare  float64 `json:"win_share"`
	RuntimeMs int64   `json:"runtime_ms"`
}

// RunElectionStudy executes the election composite across req.Trials trials.
func (s *StudyService) RunElectionStudy(ctx context.Context, req ElectionStudyRequest) (*ElectionStudyResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	roster := req.Roster
	if len(roster) == 0 {
		if s.roster == nil {
			return nil, fmt.Errorf("%w: no roster in request and no roster source configured", core.ErrInvalidState)
		}
		var err error
		roster, err = s.roster.ReadRoster()
		if err != nil {
			return nil, fmt.Errorf("roster load failed: %w", err)
		}
	}

	trial, err := montecarlo.NewElectionTrial(montecarlo.ElectionConfig{
		Roster:         roster,
		DrawsPerEntity: req.DrawsPerEntity,
		Threshold:      req.Threshold,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("election study %s: %d trials, %d entities, seed %d",
		runID, req.Trials, len(roster), req.Seed)

	results, err := s.run(ctx, req.Trials, req.Seed, req.Parallel, trial)
	if err != nil {
		return nil, err
	}

	summary, err := montecarlo.Aggregate(results)
	if err != nil {
		return nil, err
	}

	totalVotes := roster.TotalVotes()
	majority := float64(totalVotes) / 2
	wins := 0
	for _, votes := range results {
		if votes > majority {
			wins++
		}
	}

	result := &ElectionStudyResult{
		RunID:      runID,
		Seed:       req.Seed,
		Trials:     req.Trials,
		TotalVotes: totalVotes,
		Summary:    summary,
		WinShare:   float64(wins) / float64(len(results)),
		RuntimeMs:  time.Since(startTime).Milliseconds(),
	}
	s.logger.Info("election study %s: mean votes %.1f, win share %.3f (%dms)",
		runID, summary.Mean, result.WinShare, result.RuntimeMs)
	return result, nil
}

// BirthdayStudyRequest defines the inputs for a birthday-collision study
type BirthdayStudyRequest struct {
	People   int
	Days     int
	Trials   int
	Seed     uint64
	Parallel bool
	RunID    core.RunID // optional, generated if empty
}

// BirthdayStudyResult reports the Monte Carlo estimate next to the closed
// form so callers can see the approximation error directly.
type BirthdayStudyResult struct {
	RunID      core.RunID         `json:"run_id"`
	Seed       uint64             `json:"seed"`
	Trials     int                `json:"trials"`
	Estimate   float64            `json:"estimate"`
	ClosedForm float64            `json:"closed_form"`
	AbsError   float64            `json:"abs_error"`
	Summary    montecarlo.Summary `json:"summary"`
	RuntimeMs  int64              `json:"runtime_ms"`
}

// RunBirthdayStudy estimates the collision probability by simulation and
// compares it against the log-domain closed form.
func (s *StudyService) RunBirthdayStudy(ctx context.Context, req BirthdayStudyRequest) (*BirthdayStudyResult, error) {
	startTime := time.Now()

	runID := req.RunID
	if runID == "" {
		runID = core.RunID(core.NewID())
	}

	closedForm, err := dist.BirthdayCollisionProbability(req.People, req.Days)
	if err != nil {
		return nil, err
	}
	trial, err := montecarlo.NewBirthdayTrial(req.People, req.Days)
	if err != nil {
		return nil, err
	}

	s.logger.Info("birthday study %s: %d people, %d days, %d trials, seed %d",
		runID, req.People, req.Days, req.Trials, req.Seed)

	results, err := s.run(ctx, req.Trials, req.Seed, req.Parallel, trial)
	if err != nil {
		return nil, err
	}
	summary, err := montecarlo.Aggregate(results)
	if err != nil {
		return nil, err
	}

	result := &BirthdayStudyResult{
		RunID:      runID,
		Seed:       req.Seed,
		Trials:     req.Trials,
		Estimate:   summary.Mean,
		ClosedForm: closedForm,
		AbsError:   math.Abs(summary.Mean - closedForm),
		Summary:    summary,
		RuntimeMs:  time.Since(startTime).Milliseconds(),
	}
	s.logger.Info("birthday study %s: estimate %.4f vs closed form %.4f (%dms)",
		runID, result.Estimate, result.ClosedForm, result.RuntimeMs)
	return result, nil
}

func (s *StudyService) run(ctx context.Context, trials int, seed uint64, parallel bool, fn montecarlo.TrialFunc) ([]float64, error) {
	if parallel {
		return s.runner.RunParallel(ctx, trials, seed, s.workers, fn)
	}
	return s.runner.Run(trials, seed, fn)
}
