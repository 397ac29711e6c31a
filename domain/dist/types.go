// Package dist defines the supported distribution families as immutable,
// validated parameter objects, together with pure evaluation of their
// probability mass, cumulative distribution, quantile, and moment functions.
//
// Nothing in this package draws random numbers. Sampling lives in
// internal/sampler and always receives an explicit caller-owned stream.
package dist

import "simlab/domain/core"

// Distribution is the common read-only surface of every supported family.
// All implementations are value types; evaluating any method twice with the
// same input returns bit-identical results.
type Distribution interface {
	// PMF returns P(X = k); 0 outside the support.
	PMF(k int) float64

	// CDF returns P(X <= k); 0 below the support, 1 at or above its maximum.
	CDF(k int) float64

	// Quantile returns the smallest k with CDF(k) >= p, for p in (0,1).
	// Boundary probabilities are rejected with ErrInvalidParameter.
	Quantile(p float64) (int, error)

	// Mean and Variance are the closed-form moments.
	Mean() float64
	Variance() float64

	// Support returns the inclusive integer support bounds.
	Support() (min, max int)

	// Validate reports the first parameter violation, if any.
	Validate() error
}

// Name identifies a distribution family on external surfaces (CLI flags,
// study reports).
type Name string

const (
	NameBernoulli       Name = "bernoulli"
	NameBinomial        Name = "binomial"
	NameDiscreteUniform Name = "discrete_uniform"
)

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 || p != p {
		return core.NewProbabilityError(name, p)
	}
	return nil
}

func validateQuantileProbability(p float64) error {
	if p <= 0 || p >= 1 || p != p {
		return core.NewQuantileError(p)
	}
	return nil
}

// quantileScan walks the support left to right accumulating PMF mass until
// the target probability is covered. Shared by all discrete families.
func quantileScan(d Distribution, p float64) (int, error) {
	if err := validateQuantileProbability(p); err != nil {
		return 0, err
	}
	min, max := d.Support()
	acc := 0.0
	for k := min; k < max; k++ {
		acc += d.PMF(k)
		if acc >= p {
			return k, nil
		}
	}
	// Accumulated rounding can leave acc just below p; the support maximum
	// always satisfies CDF(max) = 1 >= p.
	return max, nil
}
