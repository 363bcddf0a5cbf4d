// Package setup builds the configuration, logger and service shared by the
// explorer subcommands.
package setup

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/config"
	"github.com/papercomputeco/explorer/pkg/experiment"
	"github.com/papercomputeco/explorer/pkg/explorer"
	"github.com/papercomputeco/explorer/pkg/logger"
	"github.com/papercomputeco/explorer/pkg/preset"
)

// Options are the persistent flags of the root command.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses the defaults.
	ConfigPath string

	// ConfigRequired makes a missing configuration file an error. It is set
	// when the user names the file explicitly.
	ConfigRequired bool

	// PresetsFile overrides presets.file from the configuration.
	PresetsFile string

	Debug bool
}

// Env is everything a subcommand needs to run explorer requests.
type Env struct {
	Config  config.Config
	Logger  *zap.Logger
	Presets *preset.Registry
	Service *explorer.Service
}

// Config loads the configuration and applies flag overrides.
func (o *Options) Config() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath, !o.ConfigRequired)
	if err != nil {
		return cfg, err
	}

	if o.Debug {
		cfg.Server.Debug = true
	}
	if o.PresetsFile != "" {
		cfg.Presets.File = o.PresetsFile
	}
	return cfg, nil
}

// Env loads the configuration and presets and creates a service logging to
// logs. With record set, runs are kept in an in-memory experiment log bounded
// by experiments.max_nodes.
func (o *Options) Env(logs io.Writer, record bool) (*Env, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}
	return NewEnv(cfg, logs, record)
}

// NewEnv creates an Env from an already loaded configuration.
func NewEnv(cfg config.Config, logs io.Writer, record bool) (*Env, error) {
	log := logger.NewLogger(cfg.Server.Debug,
		logger.WithJSON(cfg.Server.JSONLogs),
		logger.WithOutput(logs),
	)

	presets := preset.Builtin()
	if cfg.Presets.File != "" {
		var err error
		presets, err = preset.LoadFile(cfg.Presets.File)
		if err != nil {
			return nil, fmt.Errorf("could not load presets: %w", err)
		}
	}

	registry, err := preset.NewRegistry(presets...)
	if err != nil {
		return nil, fmt.Errorf("invalid presets: %w", err)
	}

	var storer experiment.Storer
	if record {
		storer = experiment.NewMemoryStorer(experiment.WithMaxNodes(cfg.Experiments.MaxNodes))
	}

	return &Env{
		Config:  cfg,
		Logger:  log,
		Presets: registry,
		Service: explorer.NewService(registry, storer, cfg.Sampling, log),
	}, nil
}
