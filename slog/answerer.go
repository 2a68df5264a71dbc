package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure LoggingAnswerer implements docqa.Answerer.
var _ docqa.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with diagnostic logging.
type LoggingAnswerer struct {
	next   docqa.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next docqa.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation.
func (a *LoggingAnswerer) Answer(ctx context.Context, documentText, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("answer synthesis",
			"question", question,
			"document_bytes", len(documentText),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, documentText, question)
}
