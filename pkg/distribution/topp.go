package distribution

import "github.com/cockroachdb/errors"

// TopP keeps the nucleus of probs: the smallest set of most probable entries
// whose cumulative probability reaches p, including the entry that crosses the
// threshold. Everything else is zeroed and the kept entries are renormalized by
// their original mass.
//
// At least one entry is always kept, so p == 0 selects exactly the most
// probable entry. p == 1 keeps every entry with non-zero probability. The
// cumulative mass is measured on the normalized input and compared with
// Tolerance slack, so rounding never drops the tail at p == 1.
func TopP(probs []float64, p float64) ([]float64, error) {
	if !(p >= 0 && p <= 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "p must be in [0, 1], got %v", p)
	}
	total, err := mass(probs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(probs))
	var cumulative float64
	for _, i := range rank(probs) {
		out[i] = probs[i]
		cumulative += probs[i] / total
		if cumulative >= p-Tolerance {
			break
		}
	}
	return renormalize(out)
}
