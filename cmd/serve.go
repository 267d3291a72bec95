// serve.go implements the "zotmcp serve" command for MCP server operation.
//
// Unlike the other commands, serve blocks indefinitely handling MCP requests
// until the client disconnects.

package cmd

import (
	"github.com/spf13/cobra"

	"zotmcp/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var transport string
	var sseAddr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server for LLM integration.

The stdio transport (default) is for local clients such as Claude Desktop;
sse serves HTTP for remote clients.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return mcp.Serve(svc, mcp.Options{
				Transport: mcp.Transport(transport),
				SSEAddr:   sseAddr,
			})
		},
	}

	c.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "Transport to use (stdio or sse)")
	c.Flags().StringVar(&sseAddr, "sse-addr", mcp.DefaultSSEAddr, "Listen address for the sse transport")
	return c
}
