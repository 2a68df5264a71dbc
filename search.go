package docqa

import "context"

// Snippet is a single web search result used as auxiliary answer context.
// Missing fields default to empty strings.
type Snippet struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Searcher provides best-effort web search context for a question.
type Searcher interface {
	// Search returns up to three ranked snippets for the query.
	// The call never fails: any transport or payload failure degrades to
	// an empty result. Implementations log failures for diagnostics.
	Search(ctx context.Context, query string) []Snippet
}
