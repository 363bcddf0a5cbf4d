package distribution

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// MinP keeps every entry whose probability is at least pBase times the
// largest probability, zeroes the rest and renormalizes.
//
// The arg-max entry always survives, so the kept set is never empty for a
// valid distribution. If the largest probability is zero the all-zero vector
// is returned together with ErrDegenerateDistribution.
func MinP(probs []float64, pBase float64) ([]float64, error) {
	if !(pBase >= 0 && pBase <= 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "p_base must be in [0, 1], got %v", pBase)
	}
	if len(probs) == 0 {
		return nil, errors.Wrap(ErrInvalidDistribution, "empty distribution")
	}
	if err := checkEntries(probs); err != nil {
		return nil, err
	}

	out := make([]float64, len(probs))
	maxProb := floats.Max(probs)
	if maxProb <= 0 {
		return out, errors.Wrap(ErrDegenerateDistribution, "largest probability is zero")
	}

	threshold := pBase * maxProb
	for i, p := range probs {
		if p >= threshold {
			out[i] = p
		}
	}
	return renormalize(out)
}
