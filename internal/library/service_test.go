package library_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zotmcp/internal/library"
	"zotmcp/internal/report"
	"zotmcp/internal/zotero"
)

// fakeClient is a canned-response Zotero client that records the search
// queries it receives.
type fakeClient struct {
	items    map[string]*zotero.Item
	itemErr  error
	children []zotero.Item
	childErr error

	results   []zotero.Item
	searchErr error
	queries   []zotero.SearchQuery

	fulltext    *zotero.Fulltext
	fulltextErr error
}

func (f *fakeClient) Item(_ context.Context, key string) (*zotero.Item, error) {
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	item, ok := f.items[key]
	if !ok {
		return nil, zotero.ErrNotFound
	}
	return item, nil
}

func (f *fakeClient) Children(_ context.Context, _ string) ([]zotero.Item, error) {
	return f.children, f.childErr
}

func (f *fakeClient) Search(_ context.Context, q zotero.SearchQuery) ([]zotero.Item, error) {
	f.queries = append(f.queries, q)
	return f.results, f.searchErr
}

func (f *fakeClient) Fulltext(_ context.Context, _ string) (*zotero.Fulltext, error) {
	return f.fulltext, f.fulltextErr
}

func article(key string) *zotero.Item {
	return &zotero.Item{
		Key: key,
		Data: zotero.ItemData{
			Key:      key,
			ItemType: "journalArticle",
			Title:    "Test Article",
			Date:     "2024",
		},
	}
}

func pdfChild(key string) zotero.Item {
	return zotero.Item{
		Key: key,
		Data: zotero.ItemData{
			Key:         key,
			ItemType:    "attachment",
			ContentType: "application/pdf",
			MD5:         "123456789",
		},
	}
}

func TestMetadata_Found(t *testing.T) {
	fake := &fakeClient{items: map[string]*zotero.Item{"ABCD1234": article("ABCD1234")}}
	svc := library.New(fake)

	text, err := svc.Metadata(context.Background(), "ABCD1234")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Title: Test Article"))
}

func TestMetadata_NotFoundIsTextNotError(t *testing.T) {
	svc := library.New(&fakeClient{})

	text, err := svc.Metadata(context.Background(), "MISSING1")

	require.NoError(t, err)
	assert.Equal(t, "No item found with key: MISSING1", text)
}

func TestMetadata_UpstreamFailurePropagates(t *testing.T) {
	fake := &fakeClient{itemErr: errors.New("connection refused")}
	svc := library.New(fake)

	_, err := svc.Metadata(context.Background(), "ABCD1234")

	require.Error(t, err)
}

func TestFulltext_WithExtractedText(t *testing.T) {
	fake := &fakeClient{
		items:    map[string]*zotero.Item{"ABCD1234": article("ABCD1234")},
		children: []zotero.Item{pdfChild("XYZ789AB")},
		fulltext: &zotero.Fulltext{Content: "This is the extracted full text."},
	}
	svc := library.New(fake)

	text, err := svc.Fulltext(context.Background(), "ABCD1234")

	require.NoError(t, err)
	assert.Contains(t, text, "Attachment Item Key: XYZ789AB")
	assert.True(t, strings.HasSuffix(text, "Full Text:\nThis is the extracted full text."))
}

func TestFulltext_NoAttachment(t *testing.T) {
	fake := &fakeClient{
		items: map[string]*zotero.Item{"ABCD1234": article("ABCD1234")},
	}
	svc := library.New(fake)

	text, err := svc.Fulltext(context.Background(), "ABCD1234")

	require.NoError(t, err)
	assert.Contains(t, text, "Attachment Item Key: \n")
	assert.True(t, strings.HasSuffix(text, "Full Text:\n"+report.NoAttachment))
}

func TestFulltext_ExtractionFailure(t *testing.T) {
	fake := &fakeClient{
		items:       map[string]*zotero.Item{"ABCD1234": article("ABCD1234")},
		children:    []zotero.Item{pdfChild("XYZ789AB")},
		fulltextErr: zotero.ErrNotFound,
	}
	svc := library.New(fake)

	text, err := svc.Fulltext(context.Background(), "ABCD1234")

	require.NoError(t, err)
	assert.Contains(t, text, "Attachment Item Key: XYZ789AB")
	assert.True(t, strings.HasSuffix(text, "Full Text:\n"+report.NoExtraction))
}

func TestFulltext_NotFoundIsTextNotError(t *testing.T) {
	svc := library.New(&fakeClient{})

	text, err := svc.Fulltext(context.Background(), "MISSING1")

	require.NoError(t, err)
	assert.Equal(t, "No item found with key: MISSING1", text)
}

func TestSearch_PassesParametersExactly(t *testing.T) {
	fake := &fakeClient{results: []zotero.Item{*article("ABCD1234")}}
	svc := library.New(fake)

	_, err := svc.Search(context.Background(), "neural networks", zotero.QueryEverything, 25)

	require.NoError(t, err)
	require.Len(t, fake.queries, 1)
	assert.Equal(t, zotero.SearchQuery{
		Q:     "neural networks",
		QMode: zotero.QueryEverything,
		Limit: 25,
	}, fake.queries[0], "tag must not be forwarded")
}

func TestSearch_Defaults(t *testing.T) {
	fake := &fakeClient{}
	svc := library.New(fake)

	_, err := svc.Search(context.Background(), "q", "", 0)

	require.NoError(t, err)
	require.Len(t, fake.queries, 1)
	assert.Equal(t, zotero.QueryTitleCreatorYear, fake.queries[0].QMode)
	assert.Equal(t, library.DefaultSearchLimit, fake.queries[0].Limit)
}

func TestSearch_EmptyResult(t *testing.T) {
	svc := library.New(&fakeClient{})

	text, err := svc.Search(context.Background(), "nothing", "", 0)

	require.NoError(t, err)
	assert.Equal(t, "No items found matching your query.", text)
}

func TestSearch_UpstreamFailurePropagates(t *testing.T) {
	fake := &fakeClient{searchErr: errors.New("503")}
	svc := library.New(fake)

	_, err := svc.Search(context.Background(), "q", "", 0)

	require.Error(t, err)
}
