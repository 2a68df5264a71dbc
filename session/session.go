// Package session binds one ingested document to its accumulated
// question/answer history.
package session

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docqa"
	"github.com/google/uuid"
)

// Session orchestrates the document QA pipeline: it accepts a document
// once, then answers repeated questions against the extracted text,
// accumulating a history. A session supports one question in flight at
// a time.
type Session struct {
	Extractor docqa.DocumentExtractor
	Answerer  docqa.Answerer

	id       string
	text     string
	hash     string
	ingested bool
	history  []docqa.QARecord
}

// Ingest extracts the document's text and starts a fresh session around
// it: a new identity, the extracted text, and an empty history. On
// failure the previous session state is left untouched.
func (s *Session) Ingest(data []byte, format docqa.Format) error {
	text, err := s.Extractor.Extract(data, format)
	if err != nil {
		return err
	}
	s.id = uuid.New().String()
	s.text = text
	s.hash = contentHash(text)
	s.ingested = true
	s.history = nil
	return nil
}

// Ask answers a question against the ingested document and appends the
// exchange to the history. Requires a prior successful Ingest. A failed
// question leaves the history intact; the next question may be asked
// normally.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if !s.ingested {
		return "", docqa.Errorf(docqa.EINVALID, "no document ingested")
	}
	answer, err := s.Answerer.Answer(ctx, s.text, question)
	if err != nil {
		return "", err
	}
	s.history = append(s.history, docqa.QARecord{Question: question, Answer: answer})
	return answer, nil
}

// ID returns the session identity, assigned on each successful Ingest.
func (s *Session) ID() string {
	return s.id
}

// Text returns the extracted document text.
func (s *Session) Text() string {
	return s.text
}

// ContentHash returns the hash of the extracted text.
func (s *Session) ContentHash() string {
	return s.hash
}

// History returns a copy of the question/answer records in insertion
// order; presentation layers may reverse for most-recent-first display.
func (s *Session) History() []docqa.QARecord {
	out := make([]docqa.QARecord, len(s.history))
	copy(out, s.history)
	return out
}

// contentHash identifies extracted text using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
