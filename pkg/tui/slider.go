package tui

import (
	"math"

	"github.com/papercomputeco/explorer/pkg/distribution"
)

// slider is the adjustable parameter of one transform, with the ranges the
// explorer offers for each.
type slider struct {
	kind  string
	title string
	min   float64
	max   float64
	step  float64
	value float64
}

func newSliders(vocabSize int) []slider {
	return []slider{
		{kind: distribution.KindTemperature, title: "Temperature", min: 0.01, max: 2, step: 0.01, value: 1},
		{kind: distribution.KindTopK, title: "Top-k", min: 1, max: float64(vocabSize), step: 1, value: float64(vocabSize)},
		{kind: distribution.KindTopP, title: "Top-p", min: 0.01, max: 1, step: 0.01, value: 1},
		{kind: distribution.KindMinP, title: "Min-p", min: 0, max: 1, step: 0.01, value: 0},
	}
}

// move shifts the value by n steps, clamped to the slider range and rounded
// to the step grid so repeated presses do not accumulate drift.
func (s *slider) move(n int) {
	v := s.value + float64(n)*s.step
	v = math.Round(v/s.step) * s.step
	s.value = math.Max(s.min, math.Min(s.max, v))
}

func (s slider) transform() (distribution.Transform, error) {
	return distribution.ParseTransform(s.kind, s.value)
}
