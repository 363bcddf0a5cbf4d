package tuicmder

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/tui"
)

const tuiLongDesc string = `Explore sampling interactively in the terminal.

Tab switches between temperature, top-k, top-p and min-p, the arrow
keys move the slider, s draws samples and p cycles through presets.

Examples:
  explorer tui
  explorer tui i-have-a-simple`

const tuiShortDesc string = "Interactive terminal explorer"

type tuiCommander struct {
	opts *setup.Options
}

func NewTUICmd(opts *setup.Options) *cobra.Command {
	cmder := &tuiCommander{opts: opts}

	return &cobra.Command{
		Use:   "tui [preset]",
		Short: tuiShortDesc,
		Long:  tuiLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return cmder.run(cmd, name)
		},
	}
}

func (c *tuiCommander) run(cmd *cobra.Command, name string) error {
	// The TUI owns the terminal, so logs only surface in debug mode.
	logs := io.Discard
	if c.opts.Debug {
		logs = cmd.ErrOrStderr()
	}

	env, err := c.opts.Env(logs, false)
	if err != nil {
		return err
	}
	defer env.Logger.Sync()

	m, err := tui.New(env.Service, name, env.Logger)
	if err != nil {
		return err
	}
	return tui.Run(m)
}
