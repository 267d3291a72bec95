// Package attachment picks the single best attachment among an item's
// children for full-text extraction.
package attachment

import (
	"context"
	"sort"

	"zotmcp/internal/zotero"
)

// ChildLister is the slice of the Zotero client the selector needs.
// *zotero.Client satisfies it; tests substitute a fake.
type ChildLister interface {
	Children(ctx context.Context, key string) ([]zotero.Item, error)
}

// Details identifies a selected attachment. ContentType may be empty when
// the attachment record does not declare one.
type Details struct {
	Key         string
	ContentType string
}

// Select returns the preferred attachment for item, or ok=false when none is
// available. An item that is itself an attachment is returned directly with
// no child lookup. Otherwise attachment children are preferred by content
// type: application/pdf, then text/html, then anything else (including a
// missing content type). Within a bucket candidates are ordered by md5
// descending; the md5 ordering is kept for compatibility with existing
// behaviour and is a deterministic tie-break, not a real size signal.
//
// A failed child lookup degrades to "no attachment" rather than an error, so
// one flaky call cannot abort the caller's whole report.
func Select(ctx context.Context, lister ChildLister, item *zotero.Item) (Details, bool) {
	if item.Data.ItemType == "attachment" {
		return Details{Key: item.Key, ContentType: item.Data.ContentType}, true
	}

	children, err := lister.Children(ctx, item.Key)
	if err != nil {
		return Details{}, false
	}

	var pdfs, htmls, others []zotero.Item
	for _, child := range children {
		if child.Data.ItemType != "attachment" {
			continue
		}
		switch child.Data.ContentType {
		case "application/pdf":
			pdfs = append(pdfs, child)
		case "text/html":
			htmls = append(htmls, child)
		default:
			others = append(others, child)
		}
	}

	for _, bucket := range [][]zotero.Item{pdfs, htmls, others} {
		if len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Data.MD5 > bucket[j].Data.MD5
		})
		return Details{Key: bucket[0].Data.Key, ContentType: bucket[0].Data.ContentType}, true
	}

	return Details{}, false
}
