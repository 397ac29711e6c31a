package montecarlo

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"simlab/domain/core"
)

// Summary holds derived statistics over one completed trial batch. Purely
// derived: recomputed on demand, never stored between runs.
type Summary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"stddev"`
}

// Aggregate computes count, mean, unbiased sample variance (count-1 divisor)
// and standard deviation over a result batch. Empty input is rejected with
// ErrInvalidState; a single result has zero spread by convention.
func Aggregate(results []float64) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, core.ErrEmptyResults
	}

	mean, err := stats.Mean(results)
	if err != nil {
		return Summary{}, err
	}
	if len(results) == 1 {
		return Summary{Count: 1, Mean: mean}, nil
	}

	variance, err := stats.SampleVariance(results)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviationSample(results)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:    len(results),
		Mean:     mean,
		Variance: variance,
		StdDev:   stddev,
	}, nil
}

// Histogram buckets the results into `buckets` equal-width bins spanning
// [min, max]. Returns the bin dividers (buckets+1 values) and the count per
// bin.
func Histogram(results []float64, buckets int) (dividers, counts []float64, err error) {
	if len(results) == 0 {
		return nil, nil, core.ErrEmptyResults
	}
	if buckets < 1 {
		return nil, nil, fmt.Errorf("%w: buckets=%d (need at least 1)", core.ErrInvalidParameter, buckets)
	}

	sorted := make([]float64, len(results))
	copy(sorted, results)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// Degenerate batch: widen to a unit bin around the single value.
		lo, hi = lo-0.5, hi+0.5
	}

	dividers = make([]float64, buckets+1)
	floats.Span(dividers, lo, hi)
	// stat.Histogram bins are half-open; bump the last divider so the maximum
	// lands in the final bin instead of falling off the edge.
	dividers[buckets] = math.Nextafter(hi, math.Inf(1))

	counts = stat.Histogram(nil, dividers, sorted, nil)
	return dividers, counts, nil
}

// EmpiricalCDF returns the share of results less than or equal to x.
// Empty input is rejected with ErrInvalidState.
func EmpiricalCDF(results []float64, x float64) (float64, error) {
	if len(results) == 0 {
		return 0, core.ErrEmptyResults
	}
	sorted := make([]float64, len(results))
	copy(sorted, results)
	sort.Float64s(sorted)
	// First index whose value exceeds x == number of values <= x.
	n := sort.Search(len(sorted), func(i int) bool { return sorted[i] > x })
	return float64(n) / float64(len(sorted)), nil
}
