// Package docx provides a DOCX implementation of docqa.Extractor.
package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docqa"
)

// documentPath is the main document part inside the DOCX container.
const documentPath = "word/document.xml"

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor extracts text from DOCX documents, one paragraph per line.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract opens the bytes as a DOCX container and concatenates the text
// of every paragraph in document order, joined with newlines.
func (e *Extractor) Extract(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "opening DOCX container: %v", err)
	}

	f, err := zr.Open(documentPath)
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "DOCX container missing %s", documentPath)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "reading %s: %v", documentPath, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "parsing %s: %v", documentPath, err)
	}

	var paragraphs []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		for _, run := range p.FindElements(".//w:t") {
			sb.WriteString(run.Text())
		}
		paragraphs = append(paragraphs, sb.String())
	}
	return strings.Join(paragraphs, "\n"), nil
}
