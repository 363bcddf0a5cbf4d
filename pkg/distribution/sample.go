package distribution

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// NewRand returns a deterministic random source for Sample. Two sources built
// from the same seed produce the same draws.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample draws k independent labels from vocab, with replacement, where label
// i is chosen with probability probs[i]. Labels are returned in draw order.
//
// probs must be a valid distribution (see Validate) with the same length as
// vocab. The random source is owned by the caller and must not be shared
// between goroutines without synchronization.
func Sample(rng *rand.Rand, probs []float64, vocab []string, k int) ([]string, error) {
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "random source is nil")
	}
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sample count must be at least 1, got %d", k)
	}
	if len(probs) != len(vocab) {
		return nil, errors.Wrapf(ErrInvalidDistribution,
			"distribution has %d entries but vocabulary has %d", len(probs), len(vocab))
	}
	if err := Validate(probs); err != nil {
		return nil, err
	}

	out := make([]string, k)
	for n := range out {
		out[n] = vocab[Quantile(probs, rng.Float64())]
	}
	return out, nil
}

// Quantile is the inverse CDF of the categorical distribution probs: it
// returns the first index whose cumulative probability exceeds u, for u in
// [0, 1). Zero-probability entries are never returned unless every entry is
// zero, in which case the result is 0. Rounding that leaves u above the final
// cumulative sum resolves to the last entry with positive probability.
func Quantile(probs []float64, u float64) int {
	// Kahan-compensated running sum.
	var sum, c float64
	lastPositive := -1
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u < sum {
			return i
		}
		lastPositive = i
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}

// Empirical converts drawn samples back into a frequency distribution over
// vocab: entry i is the share of samples equal to vocab[i].
func Empirical(samples, vocab []string) ([]float64, error) {
	if len(samples) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no samples")
	}

	index := make(map[string]int, len(vocab))
	for i, label := range vocab {
		index[label] = i
	}

	counts := make([]float64, len(vocab))
	for _, s := range samples {
		i, ok := index[s]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidInput, "sample %q is not in the vocabulary", s)
		}
		counts[i]++
	}

	n := float64(len(samples))
	for i := range counts {
		counts[i] /= n
	}
	return counts, nil
}
