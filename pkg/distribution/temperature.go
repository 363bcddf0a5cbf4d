package distribution

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// ScaleByTemperature raises every probability to the power 1/t and
// renormalizes. t < 1 sharpens the distribution toward its most probable
// entries, t > 1 flattens it toward uniform and t == 1 only renormalizes.
//
// Zero entries stay zero. As t approaches zero the result collapses toward the
// arg-max entry. Probabilities are scaled by the largest one before raising
// them, so the arg-max entry is always 1 and no temperature underflows the
// whole vector.
func ScaleByTemperature(probs []float64, t float64) ([]float64, error) {
	if !(t > 0) || math.IsInf(t, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "temperature must be positive and finite, got %v", t)
	}
	if _, err := mass(probs); err != nil {
		return nil, err
	}

	top := floats.Max(probs)
	exp := 1 / t
	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = math.Pow(p/top, exp)
	}
	return renormalize(out)
}
