package dist

import "simlab/domain/core"

// DiscreteUniform draws integers from the inclusive range [Low, High] with
// equal probability.
type DiscreteUniform struct {
	Low  int
	High int
}

// NewDiscreteUniform builds a validated DiscreteUniform distribution.
func NewDiscreteUniform(low, high int) (DiscreteUniform, error) {
	d := DiscreteUniform{Low: low, High: high}
	if err := d.Validate(); err != nil {
		return DiscreteUniform{}, err
	}
	return d, nil
}

// Validate checks Low <= High.
func (d DiscreteUniform) Validate() error {
	if d.Low > d.High {
		return core.NewBoundsError(d.Low, d.High)
	}
	return nil
}

func (d DiscreteUniform) width() float64 {
	return float64(d.High - d.Low + 1)
}

// PMF returns 1/(High-Low+1) inside the range, 0 outside.
func (d DiscreteUniform) PMF(k int) float64 {
	if k < d.Low || k > d.High {
		return 0
	}
	return 1 / d.width()
}

// CDF returns P(X <= k).
func (d DiscreteUniform) CDF(k int) float64 {
	switch {
	case k < d.Low:
		return 0
	case k >= d.High:
		return 1
	default:
		return float64(k-d.Low+1) / d.width()
	}
}

// Quantile returns the smallest k with CDF(k) >= p. The comparison uses the
// same closed-form CDF callers see, so boundary probabilities resolve to the
// same bucket either way.
func (d DiscreteUniform) Quantile(p float64) (int, error) {
	if err := validateQuantileProbability(p); err != nil {
		return 0, err
	}
	for k := d.Low; k < d.High; k++ {
		if d.CDF(k) >= p {
			return k, nil
		}
	}
	return d.High, nil
}

// Mean returns (Low+High)/2.
func (d DiscreteUniform) Mean() float64 {
	return float64(d.Low+d.High) / 2
}

// Variance returns ((High-Low+1)^2 - 1) / 12.
func (d DiscreteUniform) Variance() float64 {
	w := d.width()
	return (w*w - 1) / 12
}

// Support is [Low, High].
func (d DiscreteUniform) Support() (int, int) { return d.Low, d.High }
