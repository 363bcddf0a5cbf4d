package distribution

import "github.com/cockroachdb/errors"

// Error kinds reported by the transform library. Concrete errors wrap one of
// these, so callers classify failures with errors.Is.
var (
	// ErrInvalidParameter is returned when a control parameter is out of range:
	// T <= 0, k outside [1, len], p or p_base outside [0, 1].
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDistribution is returned when the input does not sum to a
	// positive value, holds negative or non-finite entries, or its length does
	// not match the vocabulary.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrDegenerateDistribution is returned when a transform keeps no mass at all.
	ErrDegenerateDistribution = errors.New("degenerate distribution")

	// ErrInvalidInput is returned by Empirical for unknown labels or an empty
	// sample sequence.
	ErrInvalidInput = errors.New("invalid input")
)

// Kind returns a stable snake_case name for the error kind of err, or
// "internal" when err does not wrap any of the library's sentinels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, ErrInvalidDistribution):
		return "invalid_distribution"
	case errors.Is(err, ErrDegenerateDistribution):
		return "degenerate_distribution"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
