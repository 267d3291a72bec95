// tools_items.go implements MCP tools for single-item operations.
//
// Per-request failures are converted to descriptive text results rather than
// protocol-level errors: the response payload is always a successful string,
// and the only externally visible error signal is its content. Configuration
// errors never reach these handlers - they fail the serve command at startup.

package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
)

// itemMetadata handles zotero_item_metadata tool calls.
func (h *handlers) itemMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("item_key")
	if err != nil {
		return mcp.NewToolResultError("item_key is required"), nil //nolint:nilerr
	}

	text, err := h.svc.Metadata(ctx, key)
	if err != nil {
		slog.Error("item metadata failed", "key", key, "error", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error retrieving item metadata: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// itemFulltext handles zotero_item_fulltext tool calls.
func (h *handlers) itemFulltext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("item_key")
	if err != nil {
		return mcp.NewToolResultError("item_key is required"), nil //nolint:nilerr
	}

	text, err := h.svc.Fulltext(ctx, key)
	if err != nil {
		slog.Error("item full text failed", "key", key, "error", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error retrieving item full text: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
