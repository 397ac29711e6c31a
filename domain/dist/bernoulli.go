package dist

// Bernoulli is a single success/failure draw with success probability P.
type Bernoulli struct {
	P float64
}

// NewBernoulli builds a validated Bernoulli distribution.
func NewBernoulli(p float64) (Bernoulli, error) {
	d := Bernoulli{P: p}
	if err := d.Validate(); err != nil {
		return Bernoulli{}, err
	}
	return d, nil
}

// Validate checks P is a probability.
func (d Bernoulli) Validate() error {
	return validateProbability("p", d.P)
}

// PMF returns P(X = k): 1-P at 0, P at 1, 0 elsewhere.
func (d Bernoulli) PMF(k int) float64 {
	switch k {
	case 0:
		return 1 - d.P
	case 1:
		return d.P
	default:
		return 0
	}
}

// CDF returns P(X <= k).
func (d Bernoulli) CDF(k int) float64 {
	switch {
	case k < 0:
		return 0
	case k < 1:
		return 1 - d.P
	default:
		return 1
	}
}

// Quantile returns the smallest k with CDF(k) >= p.
func (d Bernoulli) Quantile(p float64) (int, error) {
	if err := validateQuantileProbability(p); err != nil {
		return 0, err
	}
	if p <= 1-d.P {
		return 0, nil
	}
	return 1, nil
}

// Mean returns P.
func (d Bernoulli) Mean() float64 { return d.P }

// Variance returns P(1-P).
func (d Bernoulli) Variance() float64 { return d.P * (1 - d.P) }

// Support is {0, 1}.
func (d Bernoulli) Support() (int, int) { return 0, 1 }
