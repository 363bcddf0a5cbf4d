package transformcmder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/render"
)

const transformLongDesc string = `Apply a transform to a preset distribution.

Prints the preset's base distribution next to the transformed one.
Kinds are temperature, top_k, top_p, min_p and none.

Examples:
  explorer transform i-have-a --kind temperature --value 0.5
  explorer transform i-have-a-simple --kind top_p --value 0.9 --format bars
  explorer transform --kind top_k --value 3 --format json`

const transformShortDesc string = "Transform a preset distribution"

type transformCommander struct {
	opts *setup.Options

	kind   string
	value  float64
	format string
	width  int
}

func NewTransformCmd(opts *setup.Options) *cobra.Command {
	cmder := &transformCommander{opts: opts}

	cmd := &cobra.Command{
		Use:   "transform [preset]",
		Short: transformShortDesc,
		Long:  transformLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return cmder.run(cmd.Context(), cmd, name)
		},
	}

	cmd.Flags().StringVarP(&cmder.kind, "kind", "k", "none", "Transform to apply (temperature, top_k, top_p, min_p, none)")
	cmd.Flags().Float64VarP(&cmder.value, "value", "v", 1, "Parameter of the transform")
	cmd.Flags().StringVarP(&cmder.format, "format", "f", "table", "Output format (table, bars, json)")
	cmd.Flags().IntVar(&cmder.width, "width", 40, "Width of the longest bar in bars format")

	return cmd
}

func (c *transformCommander) run(ctx context.Context, cmd *cobra.Command, name string) error {
	env, err := c.opts.Env(cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Logger.Sync()

	resp, err := env.Service.Transform(ctx, llm.TransformRequest{
		Base:      llm.Base{Preset: name},
		Transform: c.kind,
		Value:     c.value,
	})
	if err != nil {
		return fmt.Errorf("could not transform: %w", err)
	}

	return Write(cmd.OutOrStdout(), c.format, c.width, resp, resp.Vocabulary,
		render.Series{Name: "original", Values: resp.Original},
		render.Series{Name: resp.Transform, Values: resp.Transformed},
	)
}

// Write prints v in the requested format: series as a table or bar chart, or
// v itself as indented JSON.
func Write(w io.Writer, format string, width int, v any, vocab []string, series ...render.Series) error {
	switch format {
	case "table":
		return render.Table(w, vocab, series...)
	case "bars":
		_, err := io.WriteString(w, render.Bars(vocab, width, series...))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want table, bars or json)", format)
	}
}
