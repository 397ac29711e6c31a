package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simlab/domain/core"
	"simlab/domain/election"
	"simlab/internal/testkit"
)

type staticRoster struct {
	roster election.Roster
}

func (s staticRoster) ReadRoster() (election.Roster, error) {
	return s.roster, nil
}

func newTestService() *StudyService {
	return NewStudyService(testkit.RNG(), nil, nil, 4)
}

func TestRunElectionStudy_DeterministicRoster(t *testing.T) {
	service := newTestService()

	result, err := service.RunElectionStudy(context.Background(), ElectionStudyRequest{
		Roster: election.Roster{
			{Name: "A", Votes: 20, WinProb: 1},
			{Name: "B", Votes: 10, WinProb: 0},
		},
		Trials:         100,
		Seed:           42,
		DrawsPerEntity: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, result.Trials)
	assert.Equal(t, 30, result.TotalVotes)
	assert.Equal(t, 20.0, result.Summary.Mean, "A always wins its 20 votes")
	assert.Equal(t, 0.0, result.Summary.Variance)
	assert.Equal(t, 1.0, result.WinShare, "20 of 30 votes is a majority every trial")
	assert.False(t, result.RunID == "", "run ID is generated when absent")
}

func TestRunElectionStudy_MinorityNeverWins(t *testing.T) {
	service := newTestService()

	result, err := service.RunElectionStudy(context.Background(), ElectionStudyRequest{
		Roster: election.Roster{
			{Name: "A", Votes: 10, WinProb: 1},
			{Name: "B", Votes: 20, WinProb: 0},
		},
		Trials:         100,
		Seed:           42,
		DrawsPerEntity: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.Summary.Mean)
	assert.Equal(t, 0.0, result.WinShare, "10 of 30 votes never reaches a majority")
}

func TestRunElectionStudy_RosterFromPort(t *testing.T) {
	roster := election.Roster{{Name: "A", Votes: 5, WinProb: 1}}
	service := NewStudyService(testkit.RNG(), staticRoster{roster}, nil, 0)

	result, err := service.RunElectionStudy(context.Background(), ElectionStudyRequest{
		Trials:         10,
		Seed:           1,
		DrawsPerEntity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalVotes)
	assert.Equal(t, 5.0, result.Summary.Mean)
}

func TestRunElectionStudy_NoRosterAnywhere(t *testing.T) {
	service := newTestService()
	_, err := service.RunElectionStudy(context.Background(), ElectionStudyRequest{
		Trials:         10,
		Seed:           1,
		DrawsPerEntity: 3,
	})
	assert.ErrorIs(t, err, core.ErrInvalidState)
}

func TestRunElectionStudy_ReproducibleAcrossModes(t *testing.T) {
	roster := testkit.NewRosterGenerator(testkit.DefaultRosterConfig()).Generate()

	req := ElectionStudyRequest{
		Roster:         roster,
		Trials:         400,
		Seed:           7,
		DrawsPerEntity: 25,
	}
	service := newTestService()

	sequential, err := service.RunElectionStudy(context.Background(), req)
	require.NoError(t, err)

	req.Parallel = true
	parallel, err := service.RunElectionStudy(context.Background(), req)
	require.NoError(t, err)

	// Per-trial streams are derived from (seed, trial), so the parallel run
	// reproduces the sequential aggregates exactly.
	assert.Equal(t, sequential.Summary, parallel.Summary)
	assert.Equal(t, sequential.WinShare, parallel.WinShare)
}

func TestRunBirthdayStudy(t *testing.T) {
	service := newTestService()

	result, err := service.RunBirthdayStudy(context.Background(), BirthdayStudyRequest{
		People: 23,
		Days:   365,
		Trials: 4000,
		Seed:   42,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5073, result.ClosedForm, 0.0001)
	assert.InDelta(t, result.ClosedForm, result.Estimate, 0.03)
	assert.InDelta(t, result.AbsError, 0.0, 0.03)
	assert.Equal(t, 4000, result.Summary.Count)
}

func TestRunBirthdayStudy_InvalidParameters(t *testing.T) {
	service := newTestService()
	_, err := service.RunBirthdayStudy(context.Background(), BirthdayStudyRequest{
		People: -2,
		Days:   365,
		Trials: 10,
	})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestStudies_EmptyTrialBatchRejected(t *testing.T) {
	service := newTestService()
	_, err := service.RunBirthdayStudy(context.Background(), BirthdayStudyRequest{
		People: 23,
		Days:   365,
		Trials: 0,
		Seed:   1,
	})
	assert.ErrorIs(t, err, core.ErrInvalidState, "aggregating zero trials is undefined")
}
