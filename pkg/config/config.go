// Package config loads the explorer's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the explorer configuration.
type Config struct {
	Server      Server      `toml:"server"`
	Sampling    Sampling    `toml:"sampling"`
	Presets     Presets     `toml:"presets"`
	Experiments Experiments `toml:"experiments"`
}

// Server configures the HTTP service.
type Server struct {
	// Address to listen on (e.g., ":8080")
	ListenAddr string `toml:"listen"`

	Debug    bool `toml:"debug"`
	JSONLogs bool `toml:"json_logs"`

	// MCP mounts the MCP streamable HTTP endpoint at /mcp.
	MCP bool `toml:"mcp"`
}

// Sampling bounds the sample endpoint.
type Sampling struct {
	// DefaultSamples is used when a request does not ask for a count.
	DefaultSamples int `toml:"default_samples"`

	// MaxSamples caps a single request.
	MaxSamples int `toml:"max_samples"`

	// Seed fixes the random source for requests without their own seed.
	// nil draws a fresh seed per request.
	Seed *uint64 `toml:"seed"`
}

// Presets points at an optional presets file that is watched for changes.
type Presets struct {
	File  string `toml:"file"`
	Watch bool   `toml:"watch"`
}

// Experiments bounds the in-memory experiment log.
type Experiments struct {
	// MaxNodes caps the stored nodes; the oldest runs are evicted first.
	// 0 keeps every run.
	MaxNodes int `toml:"max_nodes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			ListenAddr: ":8080",
			MCP:        true,
		},
		Sampling: Sampling{
			DefaultSamples: 1,
			MaxSamples:     100000,
		},
		Experiments: Experiments{
			MaxNodes: 10000,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true. Unknown keys are rejected so typos surface early.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks the sampling and experiment log bounds.
func (c Config) Validate() error {
	if c.Sampling.MaxSamples < 1 {
		return fmt.Errorf("sampling.max_samples must be at least 1, got %d", c.Sampling.MaxSamples)
	}
	if c.Sampling.DefaultSamples < 1 || c.Sampling.DefaultSamples > c.Sampling.MaxSamples {
		return fmt.Errorf("sampling.default_samples must be in [1, %d], got %d",
			c.Sampling.MaxSamples, c.Sampling.DefaultSamples)
	}
	if c.Experiments.MaxNodes != 0 && c.Experiments.MaxNodes < minExperimentNodes {
		return fmt.Errorf("experiments.max_nodes must be 0 or at least %d, got %d",
			minExperimentNodes, c.Experiments.MaxNodes)
	}
	return nil
}

// minExperimentNodes holds one full run: base, transform and sample.
const minExperimentNodes = 3

// DefaultPath returns ~/.explorer/config.toml, or "" when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.explorer/config.toml"
}
