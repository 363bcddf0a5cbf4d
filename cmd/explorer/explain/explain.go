package explaincmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/explorer/pkg/explain"
)

const explainLongDesc string = `Explain a sampling concept.

Without a topic, lists the available topics.

Examples:
  explorer explain
  explorer explain top-p
  explorer explain temperature --style light`

const explainShortDesc string = "Explain temperature, top-k, top-p, min-p and sampling"

type explainCommander struct {
	style string
	width int
}

func NewExplainCmd() *cobra.Command {
	cmder := &explainCommander{}

	cmd := &cobra.Command{
		Use:       "explain [topic]",
		Short:     explainShortDesc,
		Long:      explainLongDesc,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: explain.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmder.list(cmd)
			}
			return cmder.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&cmder.style, "style", "", "Glamour style (dark, light, notty); detected from the terminal when empty")
	cmd.Flags().IntVar(&cmder.width, "width", 80, "Wrap width")

	return cmd
}

func (c *explainCommander) list(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Topics:")
	for _, topic := range explain.Topics() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", topic)
	}
	return nil
}

func (c *explainCommander) run(cmd *cobra.Command, topic string) error {
	out, err := explain.Render(topic, c.style, c.width)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
