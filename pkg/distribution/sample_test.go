package distribution_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/papercomputeco/explorer/pkg/distribution"
)

var _ = Describe("Sample", func() {
	vocab := []string{"a", "b", "c"}
	d := []float64{0.5, 0.3, 0.2}

	It("draws k labels from the vocabulary", func() {
		got, err := distribution.Sample(distribution.NewRand(1), d, vocab, 25)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(25))
		for _, s := range got {
			Expect(vocab).To(ContainElement(s))
		}
	})

	It("is reproducible for a fixed seed", func() {
		first, err := distribution.Sample(distribution.NewRand(42), d, vocab, 50)
		Expect(err).NotTo(HaveOccurred())
		second, err := distribution.Sample(distribution.NewRand(42), d, vocab, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("never draws zero-probability labels", func() {
		got, err := distribution.Sample(distribution.NewRand(7), []float64{0, 1, 0}, vocab, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveEach("b"))
	})

	It("converges to the sampled distribution", func() {
		// chi-squared goodness of fit over 10,000 draws at alpha = 0.01
		const draws = 10000
		probs, err := distribution.Normalize(base)
		Expect(err).NotTo(HaveOccurred())
		labels := []string{"cat", "dog", "house", "car", "dream", "pen", "book", "friend", "idea", "problem"}

		samples, err := distribution.Sample(distribution.NewRand(999), probs, labels, draws)
		Expect(err).NotTo(HaveOccurred())
		freq, err := distribution.Empirical(samples, labels)
		Expect(err).NotTo(HaveOccurred())

		chi2, pValue, err := distribution.GoodnessOfFit(freq, probs, draws)
		Expect(err).NotTo(HaveOccurred())
		critical := distuv.ChiSquared{K: float64(len(probs) - 1), Src: nil}.Quantile(0.99)
		Expect(chi2).To(BeNumerically("<", critical))
		Expect(pValue).To(BeNumerically(">", 0.01))
	})

	DescribeTable("rejects invalid arguments",
		func(probs []float64, labels []string, k int, kind error) {
			_, err := distribution.Sample(distribution.NewRand(1), probs, labels, k)
			Expect(errors.Is(err, kind)).To(BeTrue())
		},
		Entry("zero draws", d, vocab, 0, distribution.ErrInvalidParameter),
		Entry("length mismatch", d, []string{"a", "b"}, 1, distribution.ErrInvalidDistribution),
		Entry("not summing to one", []float64{0.5, 0.3, 0.1}, vocab, 1, distribution.ErrInvalidDistribution),
	)

	It("rejects a nil random source", func() {
		_, err := distribution.Sample(nil, d, vocab, 1)
		Expect(errors.Is(err, distribution.ErrInvalidParameter)).To(BeTrue())
	})
})

var _ = Describe("Quantile", func() {
	It("walks the cumulative distribution", func() {
		probs := []float64{0.5, 0.3, 0.2}
		Expect(distribution.Quantile(probs, 0)).To(Equal(0))
		Expect(distribution.Quantile(probs, 0.49)).To(Equal(0))
		Expect(distribution.Quantile(probs, 0.5)).To(Equal(1))
		Expect(distribution.Quantile(probs, 0.95)).To(Equal(2))
	})

	It("skips zero-probability entries", func() {
		Expect(distribution.Quantile([]float64{0, 1, 0}, 0)).To(Equal(1))
		Expect(distribution.Quantile([]float64{0.5, 0.5, 0}, 0.9999999999)).To(Equal(1))
		Expect(distribution.Quantile([]float64{0, 0}, 0.5)).To(Equal(0))
	})
})

var _ = Describe("Empirical", func() {
	vocab := []string{"a", "b", "c"}

	It("counts relative frequencies", func() {
		got, err := distribution.Empirical([]string{"a", "a", "b"}, vocab)
		Expect(err).NotTo(HaveOccurred())
		expectClose(got, []float64{2.0 / 3, 1.0 / 3, 0})
	})

	It("rejects unknown labels", func() {
		_, err := distribution.Empirical([]string{"a", "z"}, vocab)
		Expect(errors.Is(err, distribution.ErrInvalidInput)).To(BeTrue())
	})

	It("rejects an empty sample", func() {
		_, err := distribution.Empirical(nil, vocab)
		Expect(errors.Is(err, distribution.ErrInvalidInput)).To(BeTrue())
	})
})

var _ = Describe("GoodnessOfFit", func() {
	It("reports a perfect fit", func() {
		chi2, pValue, err := distribution.GoodnessOfFit([]float64{0.5, 0.5}, []float64{0.5, 0.5}, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(chi2).To(BeZero())
		Expect(pValue).To(BeNumerically("~", 1, 1e-9))
	})

	It("rejects mass on impossible categories", func() {
		chi2, pValue, err := distribution.GoodnessOfFit([]float64{0.5, 0.5}, []float64{1, 0}, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(chi2).To(BeNumerically(">", 1e300))
		Expect(pValue).To(BeZero())
	})

	It("flags a biased sample", func() {
		_, pValue, err := distribution.GoodnessOfFit([]float64{0.9, 0.1}, []float64{0.5, 0.5}, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(pValue).To(BeNumerically("<", 1e-6))
	})
})
