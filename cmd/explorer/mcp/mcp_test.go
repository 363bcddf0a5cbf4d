package mcpcmder

import (
	"context"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/explorer/cmd/explorer/setup"
)

var _ = Describe("MCP Command", func() {
	It("serves the explorer tools on its transport", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		clientTransport, serverTransport := mcp.NewInMemoryTransports()
		cmder := &mcpCommander{opts: &setup.Options{}, transport: serverTransport}
		cmd := cmder.command()
		cmd.SetArgs([]string{})
		cmd.SetErr(io.Discard)

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			_ = cmd.ExecuteContext(ctx)
		}()

		client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
		session, err := client.Connect(ctx, clientTransport, nil)
		Expect(err).NotTo(HaveOccurred())

		res, err := session.ListTools(ctx, nil)
		Expect(err).NotTo(HaveOccurred())

		names := make([]string, 0, len(res.Tools))
		for _, tool := range res.Tools {
			names = append(names, tool.Name)
		}
		Expect(names).To(ConsistOf("transform_distribution", "sample_distribution", "list_presets"))

		session.Close()
		cancel()
		Eventually(done).Should(BeClosed())
	})

	It("rejects positional arguments", func() {
		cmd := NewMCPCmd(&setup.Options{})
		cmd.SetArgs([]string{"extra"})
		cmd.SetErr(io.Discard)
		cmd.SetOut(io.Discard)
		Expect(cmd.Execute()).To(HaveOccurred())
	})
})
