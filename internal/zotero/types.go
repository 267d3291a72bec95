// Package zotero provides a small client for the Zotero Web API v3, covering
// the item, children, search and fulltext endpoints. Records are sparsely
// populated; a missing field decodes to its zero value and is never an error.
package zotero

// Item is one bibliographic record as returned by the API.
type Item struct {
	Key  string   `json:"key"`
	Data ItemData `json:"data"`
	Meta Meta     `json:"meta"`
}

// ItemData carries the nested "data" mapping of an item. All fields are
// optional in the API response.
type ItemData struct {
	Key          string    `json:"key,omitempty"`
	ItemType     string    `json:"itemType,omitempty"`
	Title        string    `json:"title,omitempty"`
	Date         string    `json:"date,omitempty"`
	Creators     []Creator `json:"creators,omitempty"`
	AbstractNote string    `json:"abstractNote,omitempty"`
	Tags         []Tag     `json:"tags,omitempty"`
	URL          string    `json:"url,omitempty"`
	DOI          string    `json:"DOI,omitempty"`

	// Attachment items only.
	ContentType string `json:"contentType,omitempty"`
	MD5         string `json:"md5,omitempty"`
}

// Creator is either a {firstName, lastName} pair or a single display name.
type Creator struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Tag wraps one tag string.
type Tag struct {
	Tag string `json:"tag"`
}

// Meta carries the item's "meta" mapping.
type Meta struct {
	NumChildren int `json:"numChildren,omitempty"`
}

// Fulltext is the response of the fulltext endpoint.
type Fulltext struct {
	Content string `json:"content"`
}

// QueryMode selects how a search query is matched against the library.
type QueryMode string

const (
	// QueryTitleCreatorYear matches against titles, creators and years.
	QueryTitleCreatorYear QueryMode = "titleCreatorYear"
	// QueryEverything additionally matches full-text content and notes.
	QueryEverything QueryMode = "everything"
)

// SearchQuery holds the parameters of a top-level item search.
type SearchQuery struct {
	Q     string
	QMode QueryMode
	Tag   string
	Limit int
}
