package main

import (
	"github.com/spf13/cobra"

	explaincmder "github.com/papercomputeco/explorer/cmd/explorer/explain"
	mcpcmder "github.com/papercomputeco/explorer/cmd/explorer/mcp"
	samplecmder "github.com/papercomputeco/explorer/cmd/explorer/sample"
	servecmder "github.com/papercomputeco/explorer/cmd/explorer/serve"
	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	transformcmder "github.com/papercomputeco/explorer/cmd/explorer/transform"
	tuicmder "github.com/papercomputeco/explorer/cmd/explorer/tui"
	"github.com/papercomputeco/explorer/pkg/config"
)

const rootLongDesc string = `explorer visualizes how LLMs pick the next token.

It reshapes a next-token distribution with temperature, top-k, top-p
and min-p, draws samples from the result and compares the empirical
frequencies with the distribution they came from.`

func newRootCmd() *cobra.Command {
	opts := &setup.Options{}

	cmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Explore LLM sampling strategies",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.ConfigRequired = cmd.Flags().Changed("config")
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath(), "Path to the TOML config file")
	cmd.PersistentFlags().StringVar(&opts.PresetsFile, "presets", "", "Path to a TOML presets file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		servecmder.NewServeCmd(opts),
		transformcmder.NewTransformCmd(opts),
		samplecmder.NewSampleCmd(opts),
		explaincmder.NewExplainCmd(),
		tuicmder.NewTUICmd(opts),
		mcpcmder.NewMCPCmd(opts),
	)

	return cmd
}
