package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zotmcp/internal/report"
	"zotmcp/internal/zotero"
)

// sampleItem returns a fully populated journal article record.
func sampleItem() *zotero.Item {
	return &zotero.Item{
		Key: "ABCD1234",
		Data: zotero.ItemData{
			Key:      "ABCD1234",
			ItemType: "journalArticle",
			Title:    "Test Article",
			Date:     "2024",
			Creators: []zotero.Creator{
				{FirstName: "John", LastName: "Doe"},
				{FirstName: "Jane", LastName: "Smith"},
			},
			AbstractNote: "This is a test abstract",
			Tags:         []zotero.Tag{{Tag: "test"}, {Tag: "article"}},
			URL:          "https://example.com",
			DOI:          "10.1234/test",
		},
		Meta: zotero.Meta{NumChildren: 2},
	}
}

func TestItem_FullRecord(t *testing.T) {
	want := strings.Join([]string{
		"Title: Test Article",
		"Type: journalArticle",
		"Date: 2024",
		"Authors: Doe, John; Smith, Jane",
		"",
		"Abstract:\nThis is a test abstract",
		"",
		"Tags: test, article",
		"URL: https://example.com",
		"DOI: 10.1234/test",
		"Number of notes: 2",
	}, "\n")

	assert.Equal(t, want, report.Item(sampleItem()))
}

func TestItem_SparseRecord(t *testing.T) {
	got := report.Item(&zotero.Item{Key: "EMPTY123"})

	want := "Title: Untitled\nType: unknown\nDate: No date"
	assert.Equal(t, want, got, "sparse records render fallbacks only")
}

func TestItem_NoCreatorsOmitsAuthors(t *testing.T) {
	item := sampleItem()
	item.Data.Creators = nil

	assert.NotContains(t, report.Item(item), "Authors:")
}

func TestItem_CreatorVariants(t *testing.T) {
	tests := []struct {
		name     string
		creators []zotero.Creator
		want     string
	}{
		{
			name:     "first and last name",
			creators: []zotero.Creator{{FirstName: "John", LastName: "Doe"}},
			want:     "Authors: Doe, John",
		},
		{
			name:     "display name only",
			creators: []zotero.Creator{{Name: "Research Consortium"}},
			want:     "Authors: Research Consortium",
		},
		{
			name: "mixed variants keep original order",
			creators: []zotero.Creator{
				{Name: "Research Consortium"},
				{FirstName: "Jane", LastName: "Smith"},
			},
			want: "Authors: Research Consortium; Smith, Jane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &zotero.Item{Data: zotero.ItemData{Creators: tt.creators}}
			assert.Contains(t, report.Item(item), tt.want)
		})
	}
}

func TestItem_ZeroChildrenOmitsNotesLine(t *testing.T) {
	item := sampleItem()
	item.Meta.NumChildren = 0

	assert.NotContains(t, report.Item(item), "Number of notes")
}

func TestItem_Pure(t *testing.T) {
	item := sampleItem()

	first := report.Item(item)
	second := report.Item(item)

	assert.Equal(t, first, second, "formatting must be byte-identical across calls")
}

func TestFulltext_Compose(t *testing.T) {
	item := &zotero.Item{Data: zotero.ItemData{Title: "Paper"}}

	got := report.Fulltext(item, "XYZ789", "extracted body")

	require.True(t, strings.HasPrefix(got, "Title: Paper"))
	assert.Contains(t, got, "\n\nAttachment Item Key: XYZ789\n\nFull Text:\nextracted body")
}

func TestFulltext_NoAttachmentLeavesKeyEmpty(t *testing.T) {
	got := report.Fulltext(&zotero.Item{}, "", report.NoAttachment)

	assert.Contains(t, got, "\n\nAttachment Item Key: \n\n")
	assert.True(t, strings.HasSuffix(got, "Full Text:\n"+report.NoAttachment))
}

func TestSearchResults_Empty(t *testing.T) {
	assert.Equal(t, "No items found matching your query.", report.SearchResults(nil))
	assert.Equal(t, "No items found matching your query.", report.SearchResults([]zotero.Item{}))
}

func TestSearchResults_Blocks(t *testing.T) {
	items := []zotero.Item{
		*sampleItem(),
		{
			Key:  "WXYZ5678",
			Data: zotero.ItemData{ItemType: "book", Title: "Another"},
		},
	}

	got := report.SearchResults(items)

	want := strings.Join([]string{
		"- Test Article (journalArticle)",
		"  Item Key: ABCD1234",
		"  Date: 2024",
		"  Authors: Doe, John; Smith, Jane",
		"  Abstract: This is a test abstract",
		"",
		"- Another (book)",
		"  Item Key: WXYZ5678",
		"  Date: ",
		"  Authors: No authors",
		"  Abstract: ",
		"",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestSearchResults_AbstractAlwaysEmitted(t *testing.T) {
	items := []zotero.Item{{Key: "K", Data: zotero.ItemData{Title: "T"}}}

	assert.Contains(t, report.SearchResults(items), "  Abstract: ")
}

func TestNotFound(t *testing.T) {
	assert.Equal(t, "No item found with key: MISSING1", report.NotFound("MISSING1"))
}
