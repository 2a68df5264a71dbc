package docqa

import "context"

// Answerer synthesizes an answer to a question about a document.
type Answerer interface {
	// Answer composes a prompt from the document text, best-effort web
	// context, and the question, then obtains a model-generated answer.
	// Returns EGENERATE if both the primary and fallback model calls fail.
	Answer(ctx context.Context, documentText, question string) (string, error)
}
