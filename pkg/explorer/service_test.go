package explorer_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/config"
	"github.com/papercomputeco/explorer/pkg/distribution"
	"github.com/papercomputeco/explorer/pkg/experiment"
	"github.com/papercomputeco/explorer/pkg/explorer"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/preset"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Service", func() {
	var (
		ctx    context.Context
		storer *experiment.MemoryStorer
		svc    *explorer.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		registry, err := preset.NewRegistry(preset.Builtin()...)
		Expect(err).NotTo(HaveOccurred())
		storer = experiment.NewMemoryStorer()
		svc = explorer.NewService(registry, storer, config.Default().Sampling, zap.NewNop())
	})

	abc := llm.Base{Vocabulary: []string{"a", "b", "c"}, Probabilities: []float64{5, 3, 2}}

	Describe("Resolve", func() {
		It("uses the default preset when nothing is given", func() {
			p, err := svc.Resolve(llm.Base{})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name).To(Equal(preset.DefaultName))
		})

		It("normalizes explicit probabilities", func() {
			p, err := svc.Resolve(abc)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Probabilities).To(Equal([]float64{0.5, 0.3, 0.2}))
		})

		It("reports unknown presets", func() {
			_, err := svc.Resolve(llm.Base{Preset: "nope"})
			Expect(errors.Is(err, explorer.ErrUnknownPreset)).To(BeTrue())
		})

		It("reports mismatched lengths as an invalid distribution", func() {
			_, err := svc.Resolve(llm.Base{Vocabulary: []string{"a"}, Probabilities: []float64{0.5, 0.5}})
			Expect(distribution.Kind(err)).To(Equal("invalid_distribution"))
		})
	})

	Describe("Transform", func() {
		It("applies the named transform and records the run", func() {
			resp, err := svc.Transform(ctx, llm.TransformRequest{Base: abc, Transform: "top_p", Value: 0.6})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Transform).To(Equal("top_p=0.6"))
			Expect(resp.Support).To(Equal(2))
			Expect(resp.Transformed[0]).To(BeNumerically("~", 0.625, 1e-9))
			Expect(resp.Experiment).To(HaveLen(64))

			depth, err := storer.Depth(ctx, resp.Experiment)
			Expect(err).NotTo(HaveOccurred())
			Expect(depth).To(Equal(1))
		})

		It("passes library errors through", func() {
			_, err := svc.Transform(ctx, llm.TransformRequest{Base: abc, Transform: "temperature", Value: 0})
			Expect(distribution.Kind(err)).To(Equal("invalid_parameter"))
		})
	})

	Describe("Pipeline", func() {
		It("chains the selected options", func() {
			resp, err := svc.Pipeline(ctx, llm.PipelineRequest{
				Base:    abc,
				Options: &llm.Options{TopK: ptr(2), MinP: ptr(0.7)},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Transform).To(Equal("top_k=2,min_p=0.7"))
			Expect(resp.Transformed).To(Equal([]float64{1, 0, 0}))
		})

		It("normalizes without options", func() {
			resp, err := svc.Pipeline(ctx, llm.PipelineRequest{Base: abc})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Transform).To(Equal("none"))
		})
	})

	Describe("Sample", func() {
		It("is reproducible with a seed", func() {
			req := llm.SampleRequest{Base: abc, Samples: 100, Options: &llm.Options{Seed: ptr(uint64(3))}}
			first, err := svc.Sample(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.Sample(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.Samples).To(Equal(second.Samples))
			Expect(first.Seed).To(Equal(uint64(3)))
			Expect(first.Experiment).To(Equal(second.Experiment))
			Expect(first.Empirical).To(HaveLen(3))
		})

		It("samples only from the filtered distribution", func() {
			resp, err := svc.Sample(ctx, llm.SampleRequest{Base: abc, Samples: 50, Options: &llm.Options{TopK: ptr(1)}})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Samples).To(HaveEach("a"))
			Expect(resp.Empirical).To(Equal([]float64{1, 0, 0}))
		})

		It("uses the configured default count", func() {
			resp, err := svc.Sample(ctx, llm.SampleRequest{Base: abc})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Samples).To(HaveLen(1))
		})

		It("rejects counts above the maximum", func() {
			_, err := svc.Sample(ctx, llm.SampleRequest{Base: abc, Samples: config.Default().Sampling.MaxSamples + 1})
			Expect(distribution.Kind(err)).To(Equal("invalid_parameter"))
		})
	})

	Describe("Empirical", func() {
		It("counts frequencies", func() {
			resp, err := svc.Empirical(llm.EmpiricalRequest{Samples: []string{"a", "a", "b", "b"}, Vocabulary: []string{"a", "b", "c"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Empirical).To(Equal([]float64{0.5, 0.5, 0}))
		})
	})
})
