// tools_search.go implements the zotero_search_items MCP tool.
//
// Separated from tools_items.go because search takes structured query
// parameters rather than a single key, and returns a multi-item listing.

package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"zotmcp/internal/library"
	"zotmcp/internal/zotero"
)

// searchItems handles zotero_search_items tool calls. The parameters passed
// to the library are exactly {q, qmode, limit}; the tag parameter is accepted
// for forward compatibility but not applied, as flagged in its description.
func (h *handlers) searchItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	qmode := zotero.QueryMode(getString(req, "qmode", string(zotero.QueryTitleCreatorYear)))
	limit := getInt(req, "limit", library.DefaultSearchLimit)

	if tag := getString(req, "tag", ""); tag != "" {
		slog.Warn("tag filter not yet applied to search", "tag", tag)
	}

	text, err := h.svc.Search(ctx, query, qmode, limit)
	if err != nil {
		slog.Error("search failed", "query", query, "error", err)
		return mcp.NewToolResultText(fmt.Sprintf("Error searching items: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}
