// Package mcp implements the Model Context Protocol server, exposing the
// Zotero library to LLMs. Items are available as tools (search, metadata,
// full text) and as URI-addressed read-only resources.
package mcp

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"zotmcp/internal/library"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Transport selects how the server speaks to its client.
type Transport string

const (
	// TransportStdio serves MCP over stdin/stdout for local clients such
	// as Claude Desktop.
	TransportStdio Transport = "stdio"
	// TransportSSE serves MCP over HTTP server-sent events.
	TransportSSE Transport = "sse"
)

// DefaultSSEAddr is the listen address used when the sse transport is
// selected without an explicit address.
const DefaultSSEAddr = ":8975"

// Options configures Serve beyond the library service itself.
type Options struct {
	Transport Transport
	SSEAddr   string // listen address for the sse transport
}

// Serve starts the MCP server and blocks until the client disconnects or
// the transport fails.
func Serve(svc *library.Service, opts Options) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{svc: svc}

	s := server.NewMCPServer(
		"Zotero",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	switch opts.Transport {
	case TransportStdio, "":
		slog.Info("zotmcp MCP server ready", "version", Version, "transport", "stdio")
		return server.ServeStdio(s)
	case TransportSSE:
		addr := opts.SSEAddr
		if addr == "" {
			addr = DefaultSSEAddr
		}
		slog.Info("zotmcp MCP server ready", "version", Version, "transport", "sse", "addr", addr)
		return server.NewSSEServer(s).Start(addr)
	default:
		return fmt.Errorf("unknown transport: %s", opts.Transport)
	}
}

// handlers provides MCP request handlers with access to the library service.
type handlers struct {
	svc *library.Service
}

// registerTools exposes the library operations as MCP tools for LLM
// invocation. Tool names and descriptions match the zotero_* convention so
// results from one tool can reference the others.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("zotero_search_items",
			mcp.WithDescription("Search for items in your Zotero library, given a query string and query mode (titleCreatorYear or everything). Returned results can be looked up with zotero_item_fulltext or zotero_item_metadata."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
			mcp.WithString("qmode",
				mcp.Description("Query mode: titleCreatorYear matches titles, creators and years; everything also matches full text and notes (default: titleCreatorYear)"),
				mcp.Enum("titleCreatorYear", "everything"),
			),
			mcp.WithString("tag", mcp.Description("Tag filter. Reserved: accepted but not yet applied to the search.")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results to return (default: 10)")),
		),
		h.searchItems,
	)

	s.AddTool(
		mcp.NewTool("zotero_item_metadata",
			mcp.WithDescription("Get metadata information about a specific Zotero item, given the item key."),
			mcp.WithString("item_key", mcp.Required(), mcp.Description("Zotero item key")),
		),
		h.itemMetadata,
	)

	s.AddTool(
		mcp.NewTool("zotero_item_fulltext",
			mcp.WithDescription("Get the full text content of a Zotero item, given the item key of a parent item or specific attachment."),
			mcp.WithString("item_key", mcp.Required(), mcp.Description("Zotero item key")),
		),
		h.itemFulltext,
	)
}
