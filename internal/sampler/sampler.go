// Package sampler produces independent draws from the supported distribution
// families. Every function takes an explicit random stream; parameters are
// validated through the domain distribution types before the first draw, so a
// rejected call never consumes random state.
package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"

	"simlab/domain/core"
	"simlab/domain/dist"
)

func validateDrawRequest(src *rand.Rand, n int) error {
	if src == nil {
		return fmt.Errorf("%w: nil random source", core.ErrInvalidParameter)
	}
	if n < 0 {
		return core.NewCountError("n", n)
	}
	return nil
}

// Bernoulli returns n independent draws in {0,1}, each 1 with probability p.
func Bernoulli(src *rand.Rand, n int, p float64) ([]int, error) {
	if err := validateDrawRequest(src, n); err != nil {
		return nil, err
	}
	d, err := dist.NewBernoulli(p)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = bernoulliDraw(src, d.P)
	}
	return out, nil
}

// Binomial returns n independent draws in [0, trials], each the number of
// successes in `trials` Bernoulli draws of probability p. Direct simulation:
// the sampled law is the binomial by construction, and for trials = 1 the
// call is draw-for-draw identical to Bernoulli.
func Binomial(src *rand.Rand, n, trials int, p float64) ([]int, error) {
	if err := validateDrawRequest(src, n); err != nil {
		return nil, err
	}
	d, err := dist.NewBinomial(trials, p)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = binomialDraw(src, d.N, d.P)
	}
	return out, nil
}

// DiscreteUniform returns n independent draws from the inclusive integer
// range [low, high], each value equally likely.
func DiscreteUniform(src *rand.Rand, n, low, high int) ([]int, error) {
	if err := validateDrawRequest(src, n); err != nil {
		return nil, err
	}
	d, err := dist.NewDiscreteUniform(low, high)
	if err != nil {
		return nil, err
	}
	width := d.High - d.Low + 1
	out := make([]int, n)
	for i := range out {
		out[i] = d.Low + src.Intn(width)
	}
	return out, nil
}

func bernoulliDraw(src *rand.Rand, p float64) int {
	if src.Float64() < p {
		return 1
	}
	return 0
}

func binomialDraw(src *rand.Rand, trials int, p float64) int {
	successes := 0
	for t := 0; t < trials; t++ {
		successes += bernoulliDraw(src, p)
	}
	return successes
}
