package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of docqa.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, documentText, question string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, documentText, question string) (string, error) {
	return a.AnswerFn(ctx, documentText, question)
}
