package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/mock"
	docqaslog "github.com/fwojciec/docqa/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search_LogsQueryAndCount(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := stdslog.New(stdslog.NewTextHandler(buf, nil))

	next := &mock.Searcher{
		SearchFn: func(context.Context, string) []docqa.Snippet {
			return []docqa.Snippet{{Title: "a"}, {Title: "b"}}
		},
	}

	s := docqaslog.NewLoggingSearcher(next, logger)

	snippets := s.Search(context.Background(), "sky color")

	require.Len(t, snippets, 2)
	assert.Contains(t, buf.String(), "web search")
	assert.Contains(t, buf.String(), "sky color")
	assert.Contains(t, buf.String(), "count=2")
}

func TestLoggingSearcher_Search_LogsEmptyResult(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := stdslog.New(stdslog.NewTextHandler(buf, nil))

	next := &mock.Searcher{
		SearchFn: func(context.Context, string) []docqa.Snippet { return nil },
	}

	s := docqaslog.NewLoggingSearcher(next, logger)

	snippets := s.Search(context.Background(), "query")

	assert.Empty(t, snippets)
	assert.Contains(t, buf.String(), "count=0")
}
