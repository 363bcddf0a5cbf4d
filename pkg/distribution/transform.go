package distribution

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Transform kinds accepted by ParseTransform.
const (
	KindNone        = "none"
	KindTemperature = "temperature"
	KindTopK        = "top_k"
	KindTopP        = "top_p"
	KindMinP        = "min_p"
)

// Kinds lists the transform kinds in the order a Chain built from sampling
// options applies them.
var Kinds = []string{KindTemperature, KindTopK, KindTopP, KindMinP}

// Transform reshapes a distribution.
type Transform interface {
	Apply(probs []float64) ([]float64, error)
	String() string
}

// Identity only normalizes its input.
type Identity struct{}

func (Identity) Apply(probs []float64) ([]float64, error) { return Normalize(probs) }
func (Identity) String() string                            { return KindNone }

// Temperature applies ScaleByTemperature.
type Temperature float64

func (t Temperature) Apply(probs []float64) ([]float64, error) {
	return ScaleByTemperature(probs, float64(t))
}

func (t Temperature) String() string { return fmt.Sprintf("%s=%g", KindTemperature, float64(t)) }

// TopKFilter applies TopK.
type TopKFilter int

func (k TopKFilter) Apply(probs []float64) ([]float64, error) { return TopK(probs, int(k)) }
func (k TopKFilter) String() string                            { return fmt.Sprintf("%s=%d", KindTopK, int(k)) }

// TopPFilter applies TopP.
type TopPFilter float64

func (p TopPFilter) Apply(probs []float64) ([]float64, error) { return TopP(probs, float64(p)) }
func (p TopPFilter) String() string                            { return fmt.Sprintf("%s=%g", KindTopP, float64(p)) }

// MinPFilter applies MinP.
type MinPFilter float64

func (p MinPFilter) Apply(probs []float64) ([]float64, error) { return MinP(probs, float64(p)) }
func (p MinPFilter) String() string                            { return fmt.Sprintf("%s=%g", KindMinP, float64(p)) }

// Chain applies its transforms in order, feeding each output into the next.
// An empty chain normalizes.
type Chain []Transform

func (c Chain) Apply(probs []float64) ([]float64, error) {
	if len(c) == 0 {
		return Normalize(probs)
	}

	out := probs
	for _, t := range c {
		next, err := t.Apply(out)
		if err != nil {
			return next, errors.Wrapf(err, "applying %s", t)
		}
		out = next
	}
	return out, nil
}

func (c Chain) String() string {
	if len(c) == 0 {
		return KindNone
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// ParseTransform builds the transform named by kind with the given parameter.
// Top-k parameters must be whole numbers. The parameter itself is range
// checked when the transform is applied.
func ParseTransform(kind string, value float64) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindNone:
		return Identity{}, nil
	case KindTemperature:
		return Temperature(value), nil
	case KindTopK, "topk":
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return nil, errors.Wrapf(ErrInvalidParameter, "k must be a whole number, got %v", value)
		}
		return TopKFilter(int(value)), nil
	case KindTopP, "topp":
		return TopPFilter(value), nil
	case KindMinP, "minp":
		return MinPFilter(value), nil
	default:
		return nil, errors.Wrapf(ErrInvalidParameter, "unknown transform %q", kind)
	}
}
