package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docqa.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) []docqa.Snippet
}

func (s *Searcher) Search(ctx context.Context, query string) []docqa.Snippet {
	return s.SearchFn(ctx, query)
}
