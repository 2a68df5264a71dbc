// Package pdf provides a PDF implementation of docqa.Extractor.
package pdf

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docqa"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor extracts text from PDF documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the bytes as a paginated PDF and concatenates the plain
// text of every page in page order. A page that yields no extractable
// text contributes an empty string.
func (e *Extractor) Extract(data []byte) (text string, err error) {
	// The underlying parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = docqa.Errorf(docqa.EEXTRACT, "parsing PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "parsing PDF: %v", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
