package dist

import (
	"math"

	"simlab/domain/core"
)

// Binomial counts successes in N independent Bernoulli trials of
// probability P. With N = 1 it coincides with Bernoulli{P}.
type Binomial struct {
	N int
	P float64
}

// NewBinomial builds a validated Binomial distribution.
func NewBinomial(n int, p float64) (Binomial, error) {
	d := Binomial{N: n, P: p}
	if err := d.Validate(); err != nil {
		return Binomial{}, err
	}
	return d, nil
}

// Validate checks N >= 0 and P is a probability.
func (d Binomial) Validate() error {
	if d.N < 0 {
		return core.NewCountError("trials", d.N)
	}
	return validateProbability("p", d.P)
}

// PMF returns C(N,k) * P^k * (1-P)^(N-k), evaluated in log space so large N
// never overflows the binomial coefficient.
func (d Binomial) PMF(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	lp := logChoose(d.N, k) + logPow(d.P, k) + logPow1m(d.P, d.N-k)
	return math.Exp(lp)
}

// CDF returns P(X <= k) by accumulating PMF terms. Each term is already
// exponentiated from a stable log-space evaluation, so the running sum stays
// in [0,1].
func (d Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= d.N {
		return 1
	}
	acc := 0.0
	for i := 0; i <= k; i++ {
		acc += d.PMF(i)
	}
	if acc > 1 {
		return 1
	}
	return acc
}

// Quantile returns the smallest k with CDF(k) >= p.
func (d Binomial) Quantile(p float64) (int, error) {
	return quantileScan(d, p)
}

// Mean returns N*P.
func (d Binomial) Mean() float64 { return float64(d.N) * d.P }

// Variance returns N*P*(1-P).
func (d Binomial) Variance() float64 { return float64(d.N) * d.P * (1 - d.P) }

// Support is [0, N].
func (d Binomial) Support() (int, int) { return 0, d.N }
