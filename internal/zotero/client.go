package zotero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	webBaseURL   = "https://api.zotero.org"
	localBaseURL = "http://localhost:23119/api"
	apiVersion   = "3"
)

var (
	// ErrNotFound is returned when the API reports no such item.
	ErrNotFound = errors.New("item not found")
	// ErrMissingCredentials is returned by New when the library ID or API
	// key is absent and local mode is off. This is a startup-class error;
	// it is never converted to a text payload.
	ErrMissingCredentials = errors.New("missing required configuration: set ZOTERO_LIBRARY_ID and ZOTERO_API_KEY")
)

// Config describes the library a Client talks to. The API key is an opaque
// credential; the client only forwards it.
type Config struct {
	LibraryID   string
	LibraryType string // "user" or "group"
	APIKey      string
	Local       bool   // use the Zotero desktop app's local API instead of the web API
	BaseURL     string // endpoint override, primarily for tests
}

// Client issues requests against one Zotero library. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	prefix     string // "/users/{id}" or "/groups/{id}"
	apiKey     string
}

// New validates cfg and returns a Client. Outside local mode a library ID
// and API key are both required. In local mode a missing library ID means
// "current user" (ID "0") and no key is sent.
func New(cfg Config) (*Client, error) {
	libraryID := cfg.LibraryID
	if cfg.Local && libraryID == "" {
		// Indicates "current user" for the local API.
		libraryID = "0"
	}

	if !cfg.Local && (libraryID == "" || cfg.APIKey == "") {
		return nil, ErrMissingCredentials
	}

	libraryType := cfg.LibraryType
	if libraryType == "" {
		libraryType = "user"
	}
	if libraryType != "user" && libraryType != "group" {
		return nil, fmt.Errorf("invalid library type %q: must be \"user\" or \"group\"", libraryType)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = webBaseURL
		if cfg.Local {
			baseURL = localBaseURL
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		prefix:     "/" + libraryType + "s/" + libraryID,
		apiKey:     cfg.APIKey,
	}, nil
}

// Item fetches a single item by key. Returns ErrNotFound when the library
// has no item with that key.
func (c *Client) Item(ctx context.Context, key string) (*Item, error) {
	var item Item
	if err := c.get(ctx, "/items/"+url.PathEscape(key), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Children fetches the direct children of an item (notes, attachments).
func (c *Client) Children(ctx context.Context, key string) ([]Item, error) {
	var children []Item
	if err := c.get(ctx, "/items/"+url.PathEscape(key)+"/children", nil, &children); err != nil {
		return nil, err
	}
	return children, nil
}

// Search runs a top-level item search with the given query parameters.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Item, error) {
	params := url.Values{}
	params.Set("q", q.Q)
	if q.QMode != "" {
		params.Set("qmode", string(q.QMode))
	}
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var items []Item
	if err := c.get(ctx, "/items", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Fulltext fetches the extracted text of an attachment. Returns ErrNotFound
// when no extracted text exists for the attachment.
func (c *Client) Fulltext(ctx context.Context, attachmentKey string) (*Fulltext, error) {
	var ft Fulltext
	if err := c.get(ctx, "/items/"+url.PathEscape(attachmentKey)+"/fulltext", nil, &ft); err != nil {
		return nil, err
	}
	return &ft, nil
}

// get issues a single GET against the library prefix and decodes the JSON
// response into target. No retries: a request runs to completion or fails
// outright.
func (c *Client) get(ctx context.Context, path string, params url.Values, target any) error {
	u := c.baseURL + c.prefix + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Zotero-API-Version", apiVersion)
	if c.apiKey != "" {
		req.Header.Set("Zotero-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
