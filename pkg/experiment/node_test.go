package experiment_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/pkg/experiment"
)

var _ = Describe("Node", func() {
	base := experiment.Step{
		Stage:         experiment.StageBase,
		Vocabulary:    []string{"a", "b", "c"},
		Probabilities: []float64{0.5, 0.3, 0.2},
	}

	Describe("NewNode", func() {
		Context("when creating a base node (no parent)", func() {
			It("keeps the given step", func() {
				node := experiment.NewNode(base, nil)

				Expect(node.Step).To(Equal(base))
				Expect(node.ParentHash).To(BeNil())
			})

			It("produces consistent hashes for the same step", func() {
				node1 := experiment.NewNode(base, nil)
				node2 := experiment.NewNode(base, nil)

				Expect(node1.Hash).To(Equal(node2.Hash))
			})

			It("produces different hashes for different probabilities", func() {
				other := base
				other.Probabilities = []float64{0.2, 0.3, 0.5}

				Expect(experiment.NewNode(base, nil).Hash).NotTo(Equal(experiment.NewNode(other, nil).Hash))
			})
		})

		Context("when creating a child node (with parent)", func() {
			var parent *experiment.Node

			BeforeEach(func() {
				parent = experiment.NewNode(base, nil)
			})

			It("links the child to the parent via ParentHash", func() {
				child := experiment.NewNode(experiment.Step{Stage: experiment.StageTransform, Transform: "top_k=1"}, parent)

				Expect(child.ParentHash).NotTo(BeNil())
				Expect(*child.ParentHash).To(Equal(parent.Hash))
			})

			It("produces different hashes for the same step under different parents", func() {
				step := experiment.Step{Stage: experiment.StageTransform, Transform: "none"}
				otherParent := experiment.NewNode(experiment.Step{Stage: experiment.StageBase, Prompt: "other"}, nil)

				Expect(experiment.NewNode(step, parent).Hash).NotTo(Equal(experiment.NewNode(step, otherParent).Hash))
			})
		})
	})

	Describe("Hash computation", func() {
		It("produces a valid SHA-256 hex string (64 characters)", func() {
			node := experiment.NewNode(base, nil)

			Expect(node.Hash).To(HaveLen(64))
			Expect(node.Hash).To(MatchRegexp("^[a-f0-9]{64}$"))
		})
	})
})
