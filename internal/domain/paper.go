// Package domain holds the core types and error sentinels shared across the
// service.
package domain

// ArxivURLBase is the base URL for arXiv abstract pages.
const ArxivURLBase = "https://arxiv.org/abs/"

// Paper is a single corpus record. Immutable once loaded; the position of a
// paper within the loaded corpus is the ranking tie-break key.
type Paper struct {
	ID    string // external identifier, e.g. an arXiv id; may be empty
	Title string
	Text  string // abstract/body used for matching
	URL   string // may be empty
}

// Link returns the paper URL, deriving an arXiv abstract link from the id
// when the record carries no explicit URL. Returns "" when neither is set.
func (p Paper) Link() string {
	if p.URL != "" {
		return p.URL
	}
	if p.ID != "" {
		return ArxivURLBase + p.ID
	}
	return ""
}
