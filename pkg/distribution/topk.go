package distribution

import "github.com/cockroachdb/errors"

// TopK keeps the k most probable entries, zeroes the rest and renormalizes.
//
// Entries are ranked by value internally, so the input does not need to be
// sorted. Ties are broken by ascending index, which keeps the selection
// deterministic when several entries share the k-th largest probability.
func TopK(probs []float64, k int) ([]float64, error) {
	if k < 1 || k > len(probs) {
		return nil, errors.Wrapf(ErrInvalidParameter, "k must be in [1, %d], got %d", len(probs), k)
	}
	if err := checkEntries(probs); err != nil {
		return nil, err
	}

	out := make([]float64, len(probs))
	for _, i := range rank(probs)[:k] {
		out[i] = probs[i]
	}
	return renormalize(out)
}
