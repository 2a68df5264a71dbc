// Package text provides a plain-text implementation of docqa.Extractor.
package text

import (
	"unicode/utf8"

	"github.com/fwojciec/docqa"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor extracts text from UTF-8 encoded plain-text documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the bytes as UTF-8 text verbatim.
func (e *Extractor) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", docqa.Errorf(docqa.EEXTRACT, "plain text is not valid UTF-8")
	}
	return string(data), nil
}
