package experiment

import (
	"context"
	"fmt"

	"github.com/papercomputeco/explorer/pkg/llm"
)

// Record stores run as a chain of base, transform and (when samples were
// drawn) sample nodes, and returns the hash of the last node. Sample nodes
// keep the draw count, seed and empirical frequencies, not the drawn labels;
// the seed and transformed distribution reproduce them.
//
// Recording the same run twice creates no new nodes. Runs from the same base
// with different transforms share the base node; repeated draws with
// different seeds branch below the shared transform node.
func Record(ctx context.Context, storer Storer, run llm.Run) (string, error) {
	steps := []Step{
		{
			Stage:         StageBase,
			Prompt:        run.Prompt,
			Vocabulary:    run.Vocabulary,
			Probabilities: run.Original,
		},
		{
			Stage:         StageTransform,
			Transform:     run.Transform,
			Probabilities: run.Transformed,
		},
	}
	if len(run.Samples) > 0 {
		steps = append(steps, Step{
			Stage:         StageSample,
			Draws:         len(run.Samples),
			Probabilities: run.Empirical,
			Seed:          run.Seed,
		})
	}

	var parent *Node
	for _, step := range steps {
		node := NewNode(step, parent)
		if err := storer.Put(ctx, node); err != nil {
			return "", fmt.Errorf("storing %s node: %w", step.Stage, err)
		}
		parent = node
	}
	return parent.Hash, nil
}

// History is a recorded run in chronological order (base first).
type History struct {
	HeadHash string  `json:"head_hash"`
	Depth    int     `json:"depth"`
	Nodes    []*Node `json:"nodes"`
}

// BuildHistory returns the chain of nodes ending at hash, oldest first.
func BuildHistory(ctx context.Context, storer Storer, hash string) (*History, error) {
	ancestry, err := storer.Ancestry(ctx, hash)
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, len(ancestry))
	for i, node := range ancestry {
		nodes[len(ancestry)-1-i] = node
	}

	return &History{
		HeadHash: hash,
		Depth:    len(nodes),
		Nodes:    nodes,
	}, nil
}
