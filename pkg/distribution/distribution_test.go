package distribution_test

import (
	"math"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/pkg/distribution"
)

// base is the ten word "I have a" example, deliberately not sorted.
var base = []float64{0.05, 0.2, 0.15, 0.12, 0.08, 0.18, 0.07, 0.06, 0.05, 0.04}

func expectDistribution(got []float64) {
	GinkgoHelper()
	var total float64
	for _, p := range got {
		Expect(p).To(BeNumerically(">=", 0))
		total += p
	}
	Expect(total).To(BeNumerically("~", 1, 1e-9))
}

func expectClose(got, want []float64) {
	GinkgoHelper()
	Expect(got).To(HaveLen(len(want)))
	for i := range want {
		Expect(got[i]).To(BeNumerically("~", want[i], 1e-9), "index %d", i)
	}
}

var _ = Describe("Normalize", func() {
	It("rescales to unit mass", func() {
		got, err := distribution.Normalize([]float64{2, 1, 1})
		Expect(err).NotTo(HaveOccurred())
		expectClose(got, []float64{0.5, 0.25, 0.25})
	})

	It("does not modify its input", func() {
		in := []float64{2, 2}
		_, err := distribution.Normalize(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(in).To(Equal([]float64{2, 2}))
	})

	DescribeTable("rejects input without positive mass",
		func(in []float64) {
			_, err := distribution.Normalize(in)
			Expect(errors.Is(err, distribution.ErrInvalidDistribution)).To(BeTrue())
		},
		Entry("empty", []float64{}),
		Entry("all zero", []float64{0, 0, 0}),
		Entry("negative entry", []float64{0.5, -0.1, 0.6}),
		Entry("NaN entry", []float64{math.NaN(), 1}),
		Entry("infinite entry", []float64{math.Inf(1), 1}),
	)
})

var _ = Describe("Validate", func() {
	It("accepts a distribution summing to one", func() {
		Expect(distribution.Validate([]float64{0.5, 0.3, 0.2})).To(Succeed())
	})

	It("rejects a distribution that does not sum to one", func() {
		err := distribution.Validate([]float64{0.5, 0.3})
		Expect(errors.Is(err, distribution.ErrInvalidDistribution)).To(BeTrue())
	})
})

var _ = Describe("ArgMax and Support", func() {
	It("picks the first of tied maxima", func() {
		Expect(distribution.ArgMax([]float64{0.1, 0.45, 0.45})).To(Equal(1))
		Expect(distribution.ArgMax(nil)).To(Equal(-1))
	})

	It("counts non-zero entries", func() {
		Expect(distribution.Support([]float64{0.5, 0, 0.5, 0})).To(Equal(2))
	})
})

var _ = Describe("Kind", func() {
	It("names wrapped sentinels", func() {
		_, err := distribution.TopK([]float64{1}, 2)
		Expect(distribution.Kind(err)).To(Equal("invalid_parameter"))
		Expect(distribution.Kind(errors.New("boom"))).To(Equal("internal"))
		Expect(distribution.Kind(nil)).To(BeEmpty())
	})
})
