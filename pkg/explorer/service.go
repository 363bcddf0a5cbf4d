// Package explorer ties the transform library to presets, sampling limits and
// the experiment log. Every outer surface (HTTP, MCP, CLI, TUI) goes through
// a Service so they agree on defaults and error kinds.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/config"
	"github.com/papercomputeco/explorer/pkg/distribution"
	"github.com/papercomputeco/explorer/pkg/experiment"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/preset"
)

// ErrUnknownPreset is returned when a request names a preset that is not
// registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Service runs explorer requests.
type Service struct {
	presets  *preset.Registry
	storer   experiment.Storer
	sampling config.Sampling
	logger   *zap.Logger

	// seed supplies seeds for requests that do not fix one.
	seed func() uint64
}

// NewService creates a Service. A nil storer disables experiment recording.
func NewService(presets *preset.Registry, storer experiment.Storer, sampling config.Sampling, logger *zap.Logger) *Service {
	return &Service{
		presets:  presets,
		storer:   storer,
		sampling: sampling,
		logger:   logger,
		seed:     rand.Uint64,
	}
}

// Presets returns the registered presets ordered by name.
func (s *Service) Presets() []preset.Preset {
	return s.presets.List()
}

// Preset returns the named preset.
func (s *Service) Preset(name string) (preset.Preset, error) {
	p, ok := s.presets.Get(name)
	if !ok {
		return preset.Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

// Storer returns the experiment log, or nil when recording is disabled.
func (s *Service) Storer() experiment.Storer {
	return s.storer
}

// Resolve returns the base distribution selected by base. Explicit
// probabilities win over a preset name; with neither, the default preset is
// used.
func (s *Service) Resolve(base llm.Base) (preset.Preset, error) {
	if len(base.Probabilities) > 0 || len(base.Vocabulary) > 0 {
		if len(base.Vocabulary) != len(base.Probabilities) {
			return preset.Preset{}, fmt.Errorf("%d labels but %d probabilities: %w",
				len(base.Vocabulary), len(base.Probabilities), distribution.ErrInvalidDistribution)
		}
		return preset.Preset{
			Name:          "custom",
			Vocabulary:    base.Vocabulary,
			Probabilities: base.Probabilities,
		}.Normalized()
	}

	name := base.Preset
	if name == "" {
		name = preset.DefaultName
	}
	return s.Preset(name)
}

// Transform applies a single named transform to the requested base.
func (s *Service) Transform(ctx context.Context, req llm.TransformRequest) (*llm.TransformResponse, error) {
	t, err := distribution.ParseTransform(req.Transform, req.Value)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, req.Base, t)
}

// Pipeline applies every transform selected by the request options.
func (s *Service) Pipeline(ctx context.Context, req llm.PipelineRequest) (*llm.TransformResponse, error) {
	return s.apply(ctx, req.Base, req.Options.Chain())
}

func (s *Service) apply(ctx context.Context, base llm.Base, t distribution.Transform) (*llm.TransformResponse, error) {
	p, err := s.Resolve(base)
	if err != nil {
		return nil, err
	}

	transformed, err := t.Apply(p.Probabilities)
	if err != nil {
		return nil, err
	}

	resp := &llm.TransformResponse{
		Prompt:      p.Prompt,
		Vocabulary:  p.Vocabulary,
		Original:    p.Probabilities,
		Transformed: transformed,
		Transform:   t.String(),
		Support:     distribution.Support(transformed),
	}

	s.logger.Debug("transform applied",
		zap.String("preset", p.Name),
		zap.String("transform", resp.Transform),
		zap.Int("support", resp.Support),
	)

	resp.Experiment = s.record(ctx, llm.Run{
		Prompt:      resp.Prompt,
		Vocabulary:  resp.Vocabulary,
		Original:    resp.Original,
		Transform:   resp.Transform,
		Transformed: resp.Transformed,
	})
	return resp, nil
}

// Sample applies the request options, draws the requested number of samples
// and compares their frequencies with the transformed distribution.
func (s *Service) Sample(ctx context.Context, req llm.SampleRequest) (*llm.SampleResponse, error) {
	n := req.Samples
	if n == 0 {
		n = s.sampling.DefaultSamples
	}
	if n < 1 || n > s.sampling.MaxSamples {
		return nil, fmt.Errorf("samples must be in [1, %d], got %d: %w",
			s.sampling.MaxSamples, n, distribution.ErrInvalidParameter)
	}

	p, err := s.Resolve(req.Base)
	if err != nil {
		return nil, err
	}

	chain := req.Options.Chain()
	transformed, err := chain.Apply(p.Probabilities)
	if err != nil {
		return nil, err
	}

	seed := s.seedFor(req.Options)
	samples, err := distribution.Sample(distribution.NewRand(seed), transformed, p.Vocabulary, n)
	if err != nil {
		return nil, err
	}

	empirical, err := distribution.Empirical(samples, p.Vocabulary)
	if err != nil {
		return nil, err
	}

	chi2, pValue, err := distribution.GoodnessOfFit(empirical, transformed, n)
	if err != nil {
		return nil, err
	}

	resp := &llm.SampleResponse{
		TransformResponse: llm.TransformResponse{
			Prompt:      p.Prompt,
			Vocabulary:  p.Vocabulary,
			Original:    p.Probabilities,
			Transformed: transformed,
			Transform:   chain.String(),
			Support:     distribution.Support(transformed),
		},
		Samples:    samples,
		Empirical:  empirical,
		ChiSquared: chi2,
		PValue:     pValue,
		Seed:       seed,
	}

	s.logger.Debug("samples drawn",
		zap.String("preset", p.Name),
		zap.String("transform", resp.Transform),
		zap.Int("samples", n),
		zap.Uint64("seed", seed),
		zap.Float64("p_value", pValue),
	)

	resp.Experiment = s.record(ctx, llm.Run{
		Prompt:      resp.Prompt,
		Vocabulary:  resp.Vocabulary,
		Original:    resp.Original,
		Transform:   resp.Transform,
		Transformed: resp.Transformed,
		Samples:     samples,
		Empirical:   empirical,
		Seed:        &seed,
	})
	return resp, nil
}

// Empirical converts labels into a frequency distribution over vocabulary.
func (s *Service) Empirical(req llm.EmpiricalRequest) (*llm.EmpiricalResponse, error) {
	freq, err := distribution.Empirical(req.Samples, req.Vocabulary)
	if err != nil {
		return nil, err
	}
	return &llm.EmpiricalResponse{Vocabulary: req.Vocabulary, Empirical: freq}, nil
}

func (s *Service) seedFor(opts *llm.Options) uint64 {
	switch {
	case opts != nil && opts.Seed != nil:
		return *opts.Seed
	case s.sampling.Seed != nil:
		return *s.sampling.Seed
	default:
		return s.seed()
	}
}

// record stores run in the experiment log. Failures are logged, not returned:
// the log is an inspection aid and never fails a request.
func (s *Service) record(ctx context.Context, run llm.Run) string {
	if s.storer == nil {
		return ""
	}

	head, err := experiment.Record(ctx, s.storer, run)
	if err != nil {
		s.logger.Error("failed to record experiment", zap.Error(err))
		return ""
	}

	s.logger.Debug("experiment recorded", zap.String("head_hash", truncate(head, 16)))
	return head
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
