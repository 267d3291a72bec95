// Package library implements the reference-library operations exposed by the
// MCP tools and the CLI: search, item metadata, and full-text reports. The
// service is stateless; every call re-fetches from the Zotero API.
package library

import (
	"context"
	"errors"

	"zotmcp/internal/attachment"
	"zotmcp/internal/report"
	"zotmcp/internal/zotero"
)

// DefaultSearchLimit is the number of search results returned when the
// caller does not specify one.
const DefaultSearchLimit = 10

// Client is the slice of the Zotero API the service depends on.
// *zotero.Client satisfies it; tests substitute a fake.
type Client interface {
	Item(ctx context.Context, key string) (*zotero.Item, error)
	Children(ctx context.Context, key string) ([]zotero.Item, error)
	Search(ctx context.Context, q zotero.SearchQuery) ([]zotero.Item, error)
	Fulltext(ctx context.Context, attachmentKey string) (*zotero.Fulltext, error)
}

// Service provides the library operations. It holds nothing beyond the
// client handle, so it is safe to share across concurrent requests.
type Service struct {
	client Client
}

// New returns a Service backed by client.
func New(client Client) *Service {
	return &Service{client: client}
}

// Metadata returns the formatted metadata report for an item. A missing item
// is reported in the text, not as an error; only upstream failures return one.
func (s *Service) Metadata(ctx context.Context, key string) (string, error) {
	item, err := s.client.Item(ctx, key)
	if errors.Is(err, zotero.ErrNotFound) {
		return report.NotFound(key), nil
	}
	if err != nil {
		return "", err
	}
	return report.Item(item), nil
}

// Fulltext returns the full-text report for an item: its metadata block, the
// selected attachment key, and the extracted text. When extraction is not
// possible the body is an explanatory placeholder rather than a failure.
func (s *Service) Fulltext(ctx context.Context, key string) (string, error) {
	item, err := s.client.Item(ctx, key)
	if errors.Is(err, zotero.ErrNotFound) {
		return report.NotFound(key), nil
	}
	if err != nil {
		return "", err
	}

	att, ok := attachment.Select(ctx, s.client, item)
	if !ok {
		return report.Fulltext(item, "", report.NoAttachment), nil
	}

	body := report.NoExtraction
	if ft, err := s.client.Fulltext(ctx, att.Key); err == nil && ft != nil && ft.Content != "" {
		body = ft.Content
	}
	return report.Fulltext(item, att.Key, body), nil
}

// Search runs a library search and returns the formatted result listing.
// Zero values for qmode and limit fall back to titleCreatorYear and
// DefaultSearchLimit.
func (s *Service) Search(ctx context.Context, query string, qmode zotero.QueryMode, limit int) (string, error) {
	if qmode == "" {
		qmode = zotero.QueryTitleCreatorYear
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	items, err := s.client.Search(ctx, zotero.SearchQuery{Q: query, QMode: qmode, Limit: limit})
	if err != nil {
		return "", err
	}
	return report.SearchResults(items), nil
}
