package samplecmder

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/distribution"
	"github.com/papercomputeco/explorer/pkg/llm"
)

var _ = Describe("Sample Command", func() {
	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := NewSampleCmd(&setup.Options{})
		cmd.SetArgs(args)
		cmd.SetOut(&out)
		cmd.SetErr(io.Discard)
		err := cmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	decode := func(out string) llm.SampleResponse {
		var resp llm.SampleResponse
		Expect(json.Unmarshal([]byte(out), &resp)).To(Succeed())
		return resp
	}

	It("draws reproducible samples for a fixed seed", func() {
		args := []string{"i-have-a", "-n", "25", "--seed", "7", "--format", "json"}

		first, err := execute(args...)
		Expect(err).NotTo(HaveOccurred())
		second, err := execute(args...)
		Expect(err).NotTo(HaveOccurred())

		a, b := decode(first), decode(second)
		Expect(a.Samples).To(HaveLen(25))
		Expect(a.Samples).To(Equal(b.Samples))
		Expect(a.Seed).To(Equal(uint64(7)))
	})

	It("applies only the options that were set", func() {
		out, err := execute("i-have-a-simple", "--top-k", "1", "-n", "10", "--format", "json")
		Expect(err).NotTo(HaveOccurred())

		resp := decode(out)
		Expect(resp.Transform).To(Equal("top_k=1"))
		Expect(resp.Samples).To(HaveEach("cat"))
		Expect(resp.Empirical[0]).To(BeNumerically("~", 1, 1e-12))
	})

	It("prints a summary and table", func() {
		out, err := execute("-n", "5", "--seed", "1")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Drew 5 samples (seed 1, none)"))
		Expect(out).To(ContainSubstring("chi-squared"))
		Expect(out).To(ContainSubstring("empirical"))
	})

	It("reports invalid options", func() {
		_, err := execute("--temperature", "0")
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))
	})
})
