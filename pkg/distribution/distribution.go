// Package distribution reshapes categorical probability distributions over a
// fixed vocabulary before sampling: temperature scaling, top-k, top-p
// (nucleus) and min-p filtering, plus seeded sampling and the reconstruction
// of empirical frequencies from drawn samples.
//
// Every function is pure. Inputs are never mutated and results are freshly
// allocated, so the package is safe for concurrent use. The only stateful
// collaborator is the *rand.Rand handed to Sample, which the caller owns.
package distribution

import (
	"cmp"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Tolerance is the absolute slack allowed when checking that a distribution
// sums to one and when comparing cumulative mass against a top-p threshold.
const Tolerance = 1e-9

// Distribution is an ordered sequence of non-negative probabilities whose
// index i corresponds to vocabulary item i.
type Distribution []float64

// Vocabulary is an ordered sequence of unique labels parallel-indexed to a
// Distribution.
type Vocabulary []string

// Normalize rescales probs so that it sums to one.
func Normalize(probs []float64) ([]float64, error) {
	total, err := mass(probs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = p / total
	}
	return out, nil
}

// Validate checks that probs is a proper probability mass function: every
// entry finite and non-negative, and the total within Tolerance of one.
func Validate(probs []float64) error {
	total, err := mass(probs)
	if err != nil {
		return err
	}
	if math.Abs(total-1) > Tolerance {
		return errors.Wrapf(ErrInvalidDistribution, "total is %v, not one", total)
	}
	return nil
}

// ArgMax returns the index of the most probable entry. Ties resolve to the
// lowest index. It returns -1 for an empty slice.
func ArgMax(probs []float64) int {
	if len(probs) == 0 {
		return -1
	}
	return floats.MaxIdx(probs)
}

// Support counts the entries carrying non-zero probability.
func Support(probs []float64) int {
	n := 0
	for _, p := range probs {
		if p > 0 {
			n++
		}
	}
	return n
}

// mass validates the entries of probs and returns their sum, which is
// guaranteed to be positive and finite on success.
func mass(probs []float64) (float64, error) {
	if len(probs) == 0 {
		return 0, errors.Wrap(ErrInvalidDistribution, "empty distribution")
	}
	if err := checkEntries(probs); err != nil {
		return 0, err
	}

	total := floats.Sum(probs)
	if total <= 0 || math.IsInf(total, 0) {
		return 0, errors.Wrapf(ErrInvalidDistribution, "total mass is %v", total)
	}
	return total, nil
}

func checkEntries(probs []float64) error {
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.Wrapf(ErrInvalidDistribution, "entry %d is %v", i, p)
		}
	}
	return nil
}

// rank returns the indices of probs ordered by probability, highest first.
// The sort is stable, so equal probabilities keep ascending index order.
func rank(probs []float64) []int {
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(probs[b], probs[a])
	})
	return order
}

// renormalize rescales the already masked vector kept to unit mass. A kept
// set without mass is reported as degenerate and the zero vector is returned
// alongside the error.
func renormalize(kept []float64) ([]float64, error) {
	total := floats.Sum(kept)
	if total <= 0 {
		return kept, errors.Wrap(ErrDegenerateDistribution, "no probability mass kept")
	}
	for i := range kept {
		kept[i] /= total
	}
	return kept, nil
}
