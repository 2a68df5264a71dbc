package serper_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/serper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSearcher_Search_MapsOrganicResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{"organic":[
			{"title":"Sky color","snippet":"The sky appears blue.","link":"https://example.com/sky"},
			{"title":"Atmosphere","snippet":"Rayleigh scattering.","link":"https://example.com/atmo"}
		]}`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "why is the sky blue")

	require.Len(t, snippets, 2)
	assert.Equal(t, docqa.Snippet{Title: "Sky color", Snippet: "The sky appears blue.", Link: "https://example.com/sky"}, snippets[0])
	assert.Equal(t, docqa.Snippet{Title: "Atmosphere", Snippet: "Rayleigh scattering.", Link: "https://example.com/atmo"}, snippets[1])
}

func TestSearcher_Search_SendsQueryPayload(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = body.ReadFrom(r.Body)
		_, _ = w.Write([]byte(`{"organic":[]}`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	s.Search(context.Background(), "what color is the sky?")

	assert.JSONEq(t, `{"q":"what color is the sky?"}`, body.String())
}

func TestSearcher_Search_TruncatesToThree(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic":[
			{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},{"title":"5"}
		]}`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "query")

	require.Len(t, snippets, 3)
	assert.Equal(t, "1", snippets[0].Title)
	assert.Equal(t, "3", snippets[2].Title)
}

func TestSearcher_Search_MissingFieldsDefaultToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic":[{"link":"https://example.com"}]}`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "query")

	require.Len(t, snippets, 1)
	assert.Empty(t, snippets[0].Title)
	assert.Empty(t, snippets[0].Snippet)
	assert.Equal(t, "https://example.com", snippets[0].Link)
}

func TestSearcher_Search_Non2xxDegradesToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	s := serper.NewSearcher("bad-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "query")

	assert.Empty(t, snippets)
}

func TestSearcher_Search_MalformedPayloadDegradesToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic":`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "query")

	assert.Empty(t, snippets)
}

func TestSearcher_Search_TransportFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	snippets := s.Search(context.Background(), "query")

	assert.Empty(t, snippets)
}

func TestSearcher_Search_CanceledContextDegradesToEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic":[{"title":"1"}]}`))
	}))
	defer srv.Close()

	s := serper.NewSearcher("test-key", serper.WithEndpoint(srv.URL), serper.WithLogger(discardLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snippets := s.Search(ctx, "query")

	assert.Empty(t, snippets)
}
