// resources.go implements MCP resource handlers for item access.
//
// Resources give LLM clients read-only access to items via URIs, useful for
// context loading where the client needs a report but isn't invoking a tool.
//
// URIs follow zotero://items/{item_key}[/metadata|/fulltext]. The bare form
// and /metadata both return the metadata report; /fulltext returns the
// full-text report.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyKey indicates a missing item key in a resource URI.
	ErrEmptyKey = errors.New("empty item key")
)

// itemView selects which report a resource URI addresses.
type itemView int

const (
	viewMetadata itemView = iota
	viewFulltext
)

// registerResources adds URI-based read access to item reports.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"zotero://items/{item_key}",
			"Item",
			mcp.WithTemplateDescription("Item metadata by key"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readItem,
	)

	// Kept alongside the bare form for clients that address the report
	// explicitly.
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"zotero://items/{item_key}/metadata",
			"Item Metadata",
			mcp.WithTemplateDescription("Item metadata by key"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readItem,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"zotero://items/{item_key}/fulltext",
			"Item Full Text",
			mcp.WithTemplateDescription("Full-text report for an item, including its metadata block"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readItem,
	)
}

// readItem handles all zotero://items/... resource requests. The URI itself
// determines which report is returned.
func (h *handlers) readItem(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	key, view, err := parseItemURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	var text string
	switch view {
	case viewFulltext:
		text, err = h.svc.Fulltext(ctx, key)
	default:
		text, err = h.svc.Metadata(ctx, key)
	}
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

// parseItemURI extracts the item key and requested view from a resource URI.
// Supports: zotero://items/{key}, zotero://items/{key}/metadata and
// zotero://items/{key}/fulltext.
func parseItemURI(uri string) (key string, view itemView, err error) {
	const prefix = "zotero://items/"
	if !strings.HasPrefix(uri, prefix) {
		return "", 0, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, prefix)

	switch {
	case strings.HasSuffix(rest, "/fulltext"):
		view = viewFulltext
		rest = strings.TrimSuffix(rest, "/fulltext")
	case strings.HasSuffix(rest, "/metadata"):
		view = viewMetadata
		rest = strings.TrimSuffix(rest, "/metadata")
	}

	if rest == "" {
		return "", 0, ErrEmptyKey
	}
	if strings.Contains(rest, "/") {
		return "", 0, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	return rest, view, nil
}
