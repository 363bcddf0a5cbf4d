package samplecmder

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	transformcmder "github.com/papercomputeco/explorer/cmd/explorer/transform"
	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/render"
)

const sampleLongDesc string = `Draw samples from a preset distribution.

The sampling options are applied in the order temperature, top-k,
top-p, min-p before drawing. The relative frequencies of the drawn
tokens are printed next to the distribution they were drawn from,
together with a chi-squared goodness-of-fit test.

Examples:
  explorer sample i-have-a -n 1000
  explorer sample i-have-a --temperature 0.7 --top-p 0.9 -n 20 --seed 42`

const sampleShortDesc string = "Sample tokens from a preset distribution"

type sampleCommander struct {
	opts *setup.Options

	samples     int
	seed        uint64
	temperature float64
	topK        int
	topP        float64
	minP        float64
	format      string
	width       int
}

func NewSampleCmd(opts *setup.Options) *cobra.Command {
	cmder := &sampleCommander{opts: opts}

	cmd := &cobra.Command{
		Use:   "sample [preset]",
		Short: sampleShortDesc,
		Long:  sampleLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return cmder.run(cmd.Context(), cmd, name)
		},
	}

	cmd.Flags().IntVarP(&cmder.samples, "samples", "n", 0, "Number of draws (default from config)")
	cmd.Flags().Uint64Var(&cmder.seed, "seed", 0, "Seed for reproducible draws")
	cmd.Flags().Float64Var(&cmder.temperature, "temperature", 1, "Temperature")
	cmd.Flags().IntVar(&cmder.topK, "top-k", 0, "Keep the k most probable tokens")
	cmd.Flags().Float64Var(&cmder.topP, "top-p", 1, "Nucleus threshold")
	cmd.Flags().Float64Var(&cmder.minP, "min-p", 0, "Threshold relative to the most probable token")
	cmd.Flags().StringVarP(&cmder.format, "format", "f", "table", "Output format (table, bars, json)")
	cmd.Flags().IntVar(&cmder.width, "width", 40, "Width of the longest bar in bars format")

	return cmd
}

// options returns the sampling options for the flags the user set.
func (c *sampleCommander) options(cmd *cobra.Command) *llm.Options {
	opts := &llm.Options{}
	flags := cmd.Flags()
	if flags.Changed("temperature") {
		opts.Temperature = &c.temperature
	}
	if flags.Changed("top-k") {
		opts.TopK = &c.topK
	}
	if flags.Changed("top-p") {
		opts.TopP = &c.topP
	}
	if flags.Changed("min-p") {
		opts.MinP = &c.minP
	}
	if flags.Changed("seed") {
		opts.Seed = &c.seed
	}
	return opts
}

func (c *sampleCommander) run(ctx context.Context, cmd *cobra.Command, name string) error {
	env, err := c.opts.Env(cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Logger.Sync()

	resp, err := env.Service.Sample(ctx, llm.SampleRequest{
		Base:    llm.Base{Preset: name},
		Options: c.options(cmd),
		Samples: c.samples,
	})
	if err != nil {
		return fmt.Errorf("could not sample: %w", err)
	}

	out := cmd.OutOrStdout()
	if c.format != "json" {
		fmt.Fprintf(out, "Drew %d samples (seed %d, %s)\n", len(resp.Samples), resp.Seed, resp.Transform)
		if len(resp.Samples) <= 50 {
			fmt.Fprintf(out, "  %s\n", strings.Join(resp.Samples, " "))
		}
		fmt.Fprintf(out, "chi-squared %.3f, p-value %.4f\n\n", resp.ChiSquared, resp.PValue)
	}

	return transformcmder.Write(out, c.format, c.width, resp, resp.Vocabulary,
		render.Series{Name: "transformed", Values: resp.Transformed},
		render.Series{Name: "empirical", Values: resp.Empirical},
	)
}
