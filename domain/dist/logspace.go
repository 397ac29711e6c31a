package dist

import "math"

// Combinatorial quantities are evaluated in log space and exponentiated only
// at the last step, so large trial counts never overflow float64.

// logFactorial returns ln(n!). Negative n is the caller's bug; the functions
// here only pass validated non-negative counts.
func logFactorial(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return lg
}

// logChoose returns ln(C(n, k)), or -Inf when k is outside [0, n].
func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return logFactorial(n) - logFactorial(k) - logFactorial(n-k)
}

// logPow returns k*ln(p) with the 0^0 = 1 convention, so a zero probability
// raised to a zero count contributes nothing instead of NaN.
func logPow(p float64, k int) float64 {
	if k == 0 {
		return 0
	}
	return float64(k) * math.Log(p)
}

// logPow1m returns k*ln(1-p) via Log1p, keeping precision for small p.
// Same 0^0 = 1 convention as logPow.
func logPow1m(p float64, k int) float64 {
	if k == 0 {
		return 0
	}
	return float64(k) * math.Log1p(-p)
}
