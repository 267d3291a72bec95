// Package report renders bibliographic records as stable plain-text reports.
// Rendering is a pure function of its input: the same record always produces
// byte-identical output, and structurally valid-but-sparse records never
// fail - absent optional fields render as omissions.
package report

import (
	"fmt"
	"strings"

	"zotmcp/internal/zotero"
)

// Literal bodies and results used in composed reports.
const (
	// NoAttachment is the full-text body when no suitable attachment exists.
	NoAttachment = "[No suitable attachment found for full text extraction]"
	// NoExtraction is the full-text body when an attachment exists but its
	// text could not be retrieved.
	NoExtraction = "[Attachment available but text extraction not possible]"
	// NoSearchResults is returned for a search that matched nothing.
	NoSearchResults = "No items found matching your query."
)

// Item renders an item's metadata block. Field order is fixed. Title, type
// and date always render, falling back to "Untitled", "unknown" and
// "No date"; every other line is omitted entirely when its field is absent.
func Item(item *zotero.Item) string {
	data := item.Data

	lines := []string{
		"Title: " + orDefault(data.Title, "Untitled"),
		"Type: " + orDefault(data.ItemType, "unknown"),
		"Date: " + orDefault(data.Date, "No date"),
	}

	if creators := joinCreators(data.Creators); creators != "" {
		lines = append(lines, "Authors: "+creators)
	}

	if data.AbstractNote != "" {
		lines = append(lines, "", "Abstract:\n"+data.AbstractNote)
	}

	if len(data.Tags) > 0 {
		tags := make([]string, len(data.Tags))
		for i, t := range data.Tags {
			tags[i] = t.Tag
		}
		lines = append(lines, "", "Tags: "+strings.Join(tags, ", "))
	}

	if data.URL != "" {
		lines = append(lines, "URL: "+data.URL)
	}
	if data.DOI != "" {
		lines = append(lines, "DOI: "+data.DOI)
	}

	// Zero children and absent meta are observably identical: no line.
	if item.Meta.NumChildren > 0 {
		lines = append(lines, fmt.Sprintf("Number of notes: %d", item.Meta.NumChildren))
	}

	return strings.Join(lines, "\n")
}

// Fulltext composes the full-text report: the metadata block, the selected
// attachment key (empty when none was selected), and the text body.
func Fulltext(item *zotero.Item, attachmentKey, body string) string {
	parts := []string{
		Item(item),
		"",
		"Attachment Item Key: " + attachmentKey,
		"",
		"Full Text:\n" + body,
	}
	return strings.Join(parts, "\n")
}

// NotFound reports a failed item lookup. This is a result string, not an
// error: it distinguishes "no such item" from "request failed".
func NotFound(key string) string {
	return "No item found with key: " + key
}

// SearchResults renders search matches as a block list. Unlike Item, the
// Abstract line is always emitted, even when empty.
func SearchResults(items []zotero.Item) string {
	if len(items) == 0 {
		return NoSearchResults
	}

	blocks := make([]string, len(items))
	for i := range items {
		data := items[i].Data

		authors := joinCreators(data.Creators)
		if authors == "" {
			authors = "No authors"
		}

		entry := []string{
			fmt.Sprintf("- %s (%s)", orDefault(data.Title, "Untitled"), orDefault(data.ItemType, "unknown")),
			"  Item Key: " + items[i].Key,
			"  Date: " + data.Date,
			"  Authors: " + authors,
			"  Abstract: " + data.AbstractNote + "\n",
		}
		blocks[i] = strings.Join(entry, "\n")
	}

	return strings.Join(blocks, "\n")
}

// joinCreators renders creators in their original order: "Last, First" when
// both names are present, otherwise the single display name. Creators with
// neither shape are skipped.
func joinCreators(creators []zotero.Creator) string {
	parts := make([]string, 0, len(creators))
	for _, c := range creators {
		switch {
		case c.FirstName != "" && c.LastName != "":
			parts = append(parts, c.LastName+", "+c.FirstName)
		case c.Name != "":
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, "; ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
