// Package montecarlo executes repeated independent trials and aggregates
// their results. Each trial receives its own random sub-stream derived from
// the run's master seed, so sequential and parallel execution of the same run
// produce identical per-trial results.
package montecarlo

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/semaphore"

	"simlab/domain/core"
	"simlab/ports"
)

// TrialFunc produces one trial result. It is called with the trial index and
// a stream private to that trial; it must not retain the stream.
type TrialFunc func(trial int, src *rand.Rand) (float64, error)

// Runner executes trial batches against an RNG port.
type Runner struct {
	rng ports.RNGPort
}

// NewRunner creates a trial runner drawing streams from the given port.
func NewRunner(rng ports.RNGPort) *Runner {
	return &Runner{rng: rng}
}

func validateBatch(trials int, fn TrialFunc) error {
	if trials < 0 {
		return core.NewCountError("trials", trials)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil trial function", core.ErrInvalidParameter)
	}
	return nil
}

// Run executes the trial function sequentially, trial index ascending. This
// ordering is the reference result for correctness checks.
func (r *Runner) Run(trials int, seed uint64, fn TrialFunc) ([]float64, error) {
	if err := validateBatch(trials, fn); err != nil {
		return nil, err
	}
	results := make([]float64, trials)
	for i := 0; i < trials; i++ {
		v, err := fn(i, r.rng.TrialStream(seed, i))
		if err != nil {
			return nil, fmt.Errorf("trial %d failed: %w", i, err)
		}
		results[i] = v
	}
	return results, nil
}

// RunParallel executes the batch with at most `workers` trials in flight,
// bounded by a weighted semaphore. Results are written at their trial index,
// so the output matches Run for the same seed regardless of scheduling.
// workers <= 0 means one worker per CPU.
func (r *Runner) RunParallel(ctx context.Context, trials int, seed uint64, workers int, fn TrialFunc) ([]float64, error) {
	if err := validateBatch(trials, fn); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]float64, trials)
	sem := semaphore.NewWeighted(int64(workers))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i := 0; i < trials; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Cancelled: either the caller's context or a failed trial.
			break
		}
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			defer sem.Release(1)
			v, err := fn(trial, r.rng.TrialStream(seed, trial))
			if err != nil {
				fail(fmt.Errorf("trial %d failed: %w", trial, err))
				return
			}
			results[trial] = v
		}(i)
	}
	wg.Wait()

	mu.Lock()
	err := firstErr
	mu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
