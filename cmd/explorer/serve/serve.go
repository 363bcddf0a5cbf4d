package servecmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
	"github.com/papercomputeco/explorer/pkg/preset"
	"github.com/papercomputeco/explorer/server"
)

const serveLongDesc string = `Serve the explorer over HTTP.

Exposes the transform and sampling endpoints under /api, HTML bar
charts under /chart/<preset>, the experiment log under /experiments
and, unless disabled, an MCP endpoint at /mcp.

When presets are read from a file and presets.watch is set, the
file is reloaded whenever it changes.

Examples:
  explorer serve
  explorer serve --listen :9090 --presets ./presets.toml --watch`

const serveShortDesc string = "Run the explorer HTTP server"

type serveCommander struct {
	opts *setup.Options

	listenAddr string
	watch      bool
	noMCP      bool
}

func NewServeCmd(opts *setup.Options) *cobra.Command {
	cmder := &serveCommander{opts: opts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.listenAddr, "listen", "l", "", "Address to listen on (default from config, \":8080\")")
	cmd.Flags().BoolVar(&cmder.watch, "watch", false, "Reload the presets file when it changes")
	cmd.Flags().BoolVar(&cmder.noMCP, "no-mcp", false, "Do not mount the MCP endpoint")

	return cmd
}

func (c *serveCommander) run(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := c.opts.Config()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if c.listenAddr != "" {
		cfg.Server.ListenAddr = c.listenAddr
	}
	if c.watch {
		cfg.Presets.Watch = true
	}
	if c.noMCP {
		cfg.Server.MCP = false
	}

	env, err := setup.NewEnv(cfg, cmd.OutOrStdout(), true)
	if err != nil {
		return err
	}
	defer env.Logger.Sync()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Presets.File != "" && cfg.Presets.Watch {
		if err := preset.Watch(ctx, cfg.Presets.File, env.Presets, env.Logger); err != nil {
			return fmt.Errorf("could not watch presets: %w", err)
		}
		env.Logger.Info("watching presets", zap.String("path", cfg.Presets.File))
	}

	s := server.New(cfg.Server, env.Service, env.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		env.Logger.Info("shutting down")
		return s.Close()
	}
}
