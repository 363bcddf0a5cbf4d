package distribution

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GoodnessOfFit runs Pearson's chi-squared test of the empirical frequencies
// observed, estimated from n draws, against the distribution expected. It
// returns the statistic and its p-value; a small p-value means the draws are
// unlikely to come from expected.
//
// Categories with zero expected probability are excluded from the statistic.
// Any observed mass on such a category makes the fit impossible and yields an
// infinite statistic with a p-value of zero.
func GoodnessOfFit(observed, expected []float64, n int) (chi2, pValue float64, err error) {
	if len(observed) != len(expected) {
		return 0, 0, errors.Wrapf(ErrInvalidInput,
			"observed has %d categories but expected has %d", len(observed), len(expected))
	}
	if n < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidInput, "sample count must be at least 1, got %d", n)
	}
	if err := Validate(expected); err != nil {
		return 0, 0, err
	}

	total := float64(n)
	obs := make([]float64, 0, len(expected))
	exp := make([]float64, 0, len(expected))
	for i, e := range expected {
		if e <= 0 {
			if observed[i] > 0 {
				return math.Inf(1), 0, nil
			}
			continue
		}
		obs = append(obs, observed[i]*total)
		exp = append(exp, e*total)
	}

	df := float64(len(exp) - 1)
	if df < 1 {
		return 0, 1, nil
	}

	chi2 = stat.ChiSquare(obs, exp)
	pValue = 1 - distuv.ChiSquared{K: df, Src: nil}.CDF(chi2)
	return chi2, pValue, nil
}
