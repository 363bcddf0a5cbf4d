package servecmder

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
)

var _ = Describe("Serve Command", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "explorer-serve-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	execute := func(opts *setup.Options, args ...string) error {
		cmd := NewServeCmd(opts)
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(io.Discard)
		return cmd.ExecuteContext(context.Background())
	}

	It("fails on a missing config file the user asked for", func() {
		opts := &setup.Options{
			ConfigPath:     filepath.Join(tmpDir, "missing.toml"),
			ConfigRequired: true,
		}
		Expect(execute(opts)).To(MatchError(ContainSubstring("could not load config")))
	})

	It("fails on unknown config keys", func() {
		path := filepath.Join(tmpDir, "config.toml")
		Expect(os.WriteFile(path, []byte("[server]\nlisten_addr = \":9000\"\n"), 0o600)).To(Succeed())

		err := execute(&setup.Options{ConfigPath: path, ConfigRequired: true})
		Expect(err).To(MatchError(ContainSubstring("server.listen_addr")))
	})

	It("fails on an invalid presets file before listening", func() {
		path := filepath.Join(tmpDir, "presets.toml")
		Expect(os.WriteFile(path, []byte("[[preset]]\nname = \"broken\"\nvocabulary = [\"a\"]\nprobabilities = [-1.0]\n"), 0o600)).To(Succeed())

		err := execute(&setup.Options{PresetsFile: path})
		Expect(err).To(MatchError(ContainSubstring("invalid presets")))
	})

	It("rejects positional arguments", func() {
		Expect(execute(&setup.Options{}, "extra")).To(HaveOccurred())
	})
})
