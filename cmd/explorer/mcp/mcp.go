package mcpcmder

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/mcptools"
)

const mcpLongDesc string = `Serve the explorer's MCP tools on stdin and stdout.

Agents can call transform_distribution, sample_distribution and
list_presets. Logs are written to stderr.

Example MCP client configuration:
  {"command": "explorer", "args": ["mcp"]}`

const mcpShortDesc string = "Serve MCP tools over stdio"

type mcpCommander struct {
	opts *setup.Options

	// transport is replaced in tests.
	transport mcp.Transport
}

func NewMCPCmd(opts *setup.Options) *cobra.Command {
	cmder := &mcpCommander{opts: opts, transport: &mcp.StdioTransport{}}
	return cmder.command()
}

func (c *mcpCommander) command() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: mcpShortDesc,
		Long:  mcpLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), cmd)
		},
	}
}

func (c *mcpCommander) run(ctx context.Context, cmd *cobra.Command) error {
	env, err := c.opts.Env(cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer env.Logger.Sync()

	env.Logger.Info("serving MCP tools on stdio")
	if err := mcptools.NewServer(env.Service).Run(ctx, c.transport); err != nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}
