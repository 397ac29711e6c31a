package dist

import (
	"fmt"
	"math"

	"simlab/domain/core"
)

// BirthdayCollisionProbability returns the closed-form probability that at
// least two of `people` draws from `days` equally likely values coincide.
//
// The no-collision product days/days * (days-1)/days * ... is accumulated as
// a sum of logs and exponentiated once at the end, so the result stays exact
// for group sizes where the direct product would underflow.
func BirthdayCollisionProbability(people, days int) (float64, error) {
	if people < 0 {
		return 0, core.NewCountError("people", people)
	}
	if days < 1 {
		return 0, fmt.Errorf("%w: days=%d (need at least 1)", core.ErrInvalidParameter, days)
	}
	if people > days {
		// Pigeonhole: a duplicate is certain.
		return 1, nil
	}
	logNoCollision := 0.0
	for i := 0; i < people; i++ {
		logNoCollision += math.Log(float64(days-i)) - math.Log(float64(days))
	}
	return 1 - math.Exp(logNoCollision), nil
}
