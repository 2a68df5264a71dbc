package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docqa"
)

// Model identifiers tried in strict primary-then-fallback order.
const (
	DefaultPrimaryModel  = "gemini-2.5-flash"
	DefaultFallbackModel = "gemini-2.5-pro"
)

// Ensure Answerer implements docqa.Answerer at compile time.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer implements docqa.Answerer by composing a prompt from the
// document text, best-effort web search context, and the question, then
// invoking Gemini.
type Answerer struct {
	gen      docqa.Generator
	search   docqa.Searcher
	primary  string
	fallback string
}

// NewAnswerer creates a new Answerer. Empty model identifiers fall back
// to the package defaults.
func NewAnswerer(gen docqa.Generator, search docqa.Searcher, primary, fallback string) *Answerer {
	if primary == "" {
		primary = DefaultPrimaryModel
	}
	if fallback == "" {
		fallback = DefaultFallbackModel
	}
	return &Answerer{gen: gen, search: search, primary: primary, fallback: fallback}
}

// Answer synthesizes an answer to the question about the document text.
// The raw question is used as the web search query. If the primary model
// call fails, the identical prompt is retried exactly once on the
// fallback model; the downgrade never carries over to the next call.
func (a *Answerer) Answer(ctx context.Context, documentText, question string) (string, error) {
	if question == "" {
		return "", docqa.Errorf(docqa.EINVALID, "question required")
	}

	snippets := a.search.Search(ctx, question)
	prompt := BuildUserPrompt(documentText, snippets, question)

	answer, err := a.gen.Generate(ctx, a.primary, prompt)
	if err == nil {
		return answer, nil
	}

	answer, err = a.gen.Generate(ctx, a.fallback, prompt)
	if err != nil {
		return "", docqa.Errorf(docqa.EGENERATE, "fallback model %s: %v", a.fallback, err)
	}
	return answer, nil
}

// BuildUserPrompt builds the user prompt from the full document text,
// optional web snippets, and the question. The web information block is
// rendered only when snippets are present. The entire document text is
// inlined verbatim on every call, so prompt size grows with the document;
// chunking is a deliberate non-feature.
func BuildUserPrompt(documentText string, snippets []docqa.Snippet, question string) string {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(documentText)
	sb.WriteString("\n</document>\n")

	if len(snippets) > 0 {
		sb.WriteString("\nRelevant web information:\n")
		for _, s := range snippets {
			fmt.Fprintf(&sb, "\n- %s\n  %s\n  %s\n", s.Title, s.Snippet, s.Link)
		}
	}

	fmt.Fprintf(&sb, "\nQuestion: %s\n\n", question)
	sb.WriteString("Please provide a clear and concise answer based primarily on the document content, incorporating the web information above when it adds useful context.")
	return sb.String()
}
