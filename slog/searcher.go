// Package slog provides logging decorators for docqa services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingSearcher implements docqa.Searcher.
var _ docqa.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with diagnostic logging. Because web
// search degrades silently, the log line is the only place a failed
// search is visible.
type LoggingSearcher struct {
	next   docqa.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docqa.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (snippets []docqa.Snippet) {
	defer func(begin time.Time) {
		s.logger.Info("web search",
			"query", query,
			"count", len(snippets),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
