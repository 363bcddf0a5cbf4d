package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/pkg/config"
)

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(body string) string {
		path := filepath.Join(dir, "config.toml")
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
		return path
	}

	It("returns defaults for an empty path", func() {
		cfg, err := config.Load("", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("tolerates a missing optional file", func() {
		cfg, err := config.Load(filepath.Join(dir, "absent.toml"), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.ListenAddr).To(Equal(":8080"))
	})

	It("fails on a missing required file", func() {
		_, err := config.Load(filepath.Join(dir, "absent.toml"), false)
		Expect(err).To(HaveOccurred())
	})

	It("overlays file values on the defaults", func() {
		path := write(`
[server]
listen = ":9090"
debug = true

[sampling]
max_samples = 500
seed = 42

[presets]
file = "presets.toml"
watch = true
`)
		cfg, err := config.Load(path, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.ListenAddr).To(Equal(":9090"))
		Expect(cfg.Server.Debug).To(BeTrue())
		Expect(cfg.Server.MCP).To(BeTrue())
		Expect(cfg.Sampling.DefaultSamples).To(Equal(1))
		Expect(cfg.Sampling.MaxSamples).To(Equal(500))
		Expect(cfg.Sampling.Seed).To(HaveValue(Equal(uint64(42))))
		Expect(cfg.Presets.File).To(Equal("presets.toml"))
		Expect(cfg.Presets.Watch).To(BeTrue())
		Expect(cfg.Experiments.MaxNodes).To(Equal(10000))
	})

	It("reads the experiment log cap", func() {
		path := write("[experiments]\nmax_nodes = 0\n")
		cfg, err := config.Load(path, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Experiments.MaxNodes).To(BeZero())
	})

	DescribeTable("rejects an experiment log cap that cannot hold a run",
		func(n string) {
			path := write("[experiments]\nmax_nodes = " + n + "\n")
			_, err := config.Load(path, false)
			Expect(err).To(MatchError(ContainSubstring("experiments.max_nodes")))
		},
		Entry("negative", "-1"),
		Entry("too small", "2"),
	)

	It("rejects unknown keys", func() {
		path := write("[server]\nlisten = \":1\"\nlistne = \":2\"\n")
		_, err := config.Load(path, false)
		Expect(err).To(MatchError(ContainSubstring("server.listne")))
	})

	It("rejects a default above the maximum", func() {
		path := write("[sampling]\ndefault_samples = 10\nmax_samples = 5\n")
		_, err := config.Load(path, false)
		Expect(err).To(MatchError(ContainSubstring("default_samples")))
	})
})
