// Package serper provides a docqa.Searcher backed by the Serper web
// search API (https://serper.dev).
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/docqa"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the Serper search endpoint.
const DefaultEndpoint = "https://google.serper.dev/search"

// DefaultTimeout bounds each search request.
const DefaultTimeout = 10 * time.Second

// maxSnippets caps how many organic results a search contributes.
const maxSnippets = 3

// Ensure Searcher implements docqa.Searcher at compile time.
var _ docqa.Searcher = (*Searcher)(nil)

// Searcher queries the Serper API for web context. Searches are
// best-effort by contract: every failure is logged and degrades to an
// empty result, never an error.
type Searcher struct {
	apiKey   string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithEndpoint overrides the search endpoint. Used in tests.
func WithEndpoint(url string) Option {
	return func(s *Searcher) {
		s.endpoint = url
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
// Defaults to a client with a DefaultTimeout timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Searcher) {
		s.client = client
	}
}

// WithLogger sets the logger for degrade events. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// WithRateLimit sets the client-side requests-per-second limit.
// Defaults to 1 request per second.
func WithRateLimit(rps float64) Option {
	return func(s *Searcher) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearcher creates a Searcher authenticated by the given API key.
func NewSearcher(apiKey string, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		limiter:  rate.NewLimiter(rate.Limit(1), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Search returns up to three ranked snippets for the query. Missing
// result fields default to empty strings.
func (s *Searcher) Search(ctx context.Context, query string) []docqa.Snippet {
	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("web search degraded", "query", query, "err", err)
		return nil
	}

	payload, err := json.Marshal(struct {
		Q string `json:"q"`
	}{Q: query})
	if err != nil {
		s.logger.Warn("web search degraded", "query", query, "err", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		s.logger.Warn("web search degraded", "query", query, "err", err)
		return nil
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("web search degraded", "query", query, "err", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("web search degraded", "query", query, "status", resp.StatusCode)
		return nil
	}

	var parsed struct {
		Organic []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logger.Warn("web search degraded", "query", query, "err", err)
		return nil
	}

	snippets := make([]docqa.Snippet, 0, maxSnippets)
	for i, r := range parsed.Organic {
		if i >= maxSnippets {
			break
		}
		snippets = append(snippets, docqa.Snippet{Title: r.Title, Snippet: r.Snippet, Link: r.Link})
	}
	return snippets
}
