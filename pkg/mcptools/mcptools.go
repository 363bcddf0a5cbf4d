// Package mcptools exposes the explorer to agents as Model Context Protocol
// tools.
package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/papercomputeco/explorer/pkg/explorer"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/preset"
)

const (
	serverName    = "explorer"
	serverVersion = "v0.1.0"
)

// TransformInput is the argument of the transform_distribution tool.
type TransformInput struct {
	Preset        string    `json:"preset,omitempty" jsonschema:"name of a registered preset; defaults to i-have-a"`
	Vocabulary    []string  `json:"vocabulary,omitempty" jsonschema:"explicit vocabulary, overrides preset"`
	Probabilities []float64 `json:"probabilities,omitempty" jsonschema:"probabilities parallel to vocabulary"`
	Transform     string    `json:"transform" jsonschema:"one of temperature, top_k, top_p, min_p, none"`
	Value         float64   `json:"value" jsonschema:"parameter of the transform"`
}

// SampleInput is the argument of the sample_distribution tool.
type SampleInput struct {
	Preset        string    `json:"preset,omitempty" jsonschema:"name of a registered preset; defaults to i-have-a"`
	Vocabulary    []string  `json:"vocabulary,omitempty" jsonschema:"explicit vocabulary, overrides preset"`
	Probabilities []float64 `json:"probabilities,omitempty" jsonschema:"probabilities parallel to vocabulary"`
	Temperature   *float64  `json:"temperature,omitempty" jsonschema:"temperature applied before sampling"`
	TopK          *int      `json:"top_k,omitempty" jsonschema:"keep the k most probable tokens"`
	TopP          *float64  `json:"top_p,omitempty" jsonschema:"nucleus threshold"`
	MinP          *float64  `json:"min_p,omitempty" jsonschema:"relative threshold against the most probable token"`
	Seed          *uint64   `json:"seed,omitempty" jsonschema:"seed for reproducible draws"`
	Samples       int       `json:"samples,omitempty" jsonschema:"number of draws"`
}

// PresetList is the result of the list_presets tool.
type PresetList struct {
	Presets []preset.Preset `json:"presets"`
}

// NewServer builds an MCP server whose tools call svc.
func NewServer(svc *explorer.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform_distribution",
		Description: "Apply temperature, top-k, top-p or min-p to a next-token distribution and return it next to the original.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in TransformInput) (*mcp.CallToolResult, llm.TransformResponse, error) {
		resp, err := svc.Transform(ctx, llm.TransformRequest{
			Base:      llm.Base{Preset: in.Preset, Vocabulary: in.Vocabulary, Probabilities: in.Probabilities},
			Transform: in.Transform,
			Value:     in.Value,
		})
		if err != nil {
			return nil, llm.TransformResponse{}, err
		}
		return nil, *resp, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sample_distribution",
		Description: "Draw tokens from a next-token distribution after optional sampling transforms and report their empirical frequencies.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SampleInput) (*mcp.CallToolResult, llm.SampleResponse, error) {
		resp, err := svc.Sample(ctx, llm.SampleRequest{
			Base: llm.Base{Preset: in.Preset, Vocabulary: in.Vocabulary, Probabilities: in.Probabilities},
			Options: &llm.Options{
				Temperature: in.Temperature,
				TopK:        in.TopK,
				TopP:        in.TopP,
				MinP:        in.MinP,
				Seed:        in.Seed,
			},
			Samples: in.Samples,
		})
		if err != nil {
			return nil, llm.SampleResponse{}, err
		}
		return nil, *resp, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_presets",
		Description: "List the prompts and base distributions available to the other tools.",
	}, func(context.Context, *mcp.CallToolRequest, struct{}) (*mcp.CallToolResult, PresetList, error) {
		return nil, PresetList{Presets: svc.Presets()}, nil
	})

	return server
}
