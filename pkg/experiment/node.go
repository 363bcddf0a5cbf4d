// Package experiment records explorer runs as chains of content-addressed
// nodes: a base distribution, the transform applied to it and the samples
// drawn from the result. Identical runs hash to identical nodes and share
// storage; runs that diverge branch from their common prefix.
package experiment

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Stage names the step of a run that a node records.
type Stage string

const (
	StageBase      Stage = "base"
	StageTransform Stage = "transform"
	StageSample    Stage = "sample"
)

// Step is the hashable content of a node.
type Step struct {
	Stage         Stage     `json:"stage"`
	Prompt        string    `json:"prompt,omitempty"`
	Transform     string    `json:"transform,omitempty"`
	Vocabulary    []string  `json:"vocabulary,omitempty"`
	Probabilities []float64 `json:"probabilities,omitempty"`
	Draws         int       `json:"draws,omitempty"`
	Seed          *uint64   `json:"seed,omitempty"`
}

// Node represents a single content-addressed step of an experiment.
type Node struct {
	// Hash is the content-addressed identifier (SHA-256, hex-encoded)
	Hash string `json:"hash"`

	// ParentHash links to the previous step. nil for base nodes.
	ParentHash *string `json:"parent_hash"`

	Step Step `json:"step"`
}

// input is the canonical form hashed for a node.
type input struct {
	Step   Step   `json:"step"`
	Parent string `json:"parent,omitempty"`
}

// NewNode creates a new node with the computed hash for the provided step
func NewNode(step Step, parent *Node) *Node {
	n := &Node{
		Step: step,
	}

	if parent != nil {
		n.ParentHash = &parent.Hash
	}

	n.Hash = n.computeHash()
	return n
}

func (n *Node) computeHash() string {
	i := &input{
		Step: n.Step,
	}

	if n.ParentHash != nil {
		i.Parent = *n.ParentHash
	}

	// struct field order makes the encoding deterministic
	data, err := json.Marshal(i)
	if err != nil {
		panic("failed to marshal hash input: " + err.Error())
	}

	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
