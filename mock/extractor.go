package mock

import (
	"github.com/fwojciec/docqa"
)

var _ docqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docqa.Extractor.
type Extractor struct {
	ExtractFn func(data []byte) (string, error)
}

func (e *Extractor) Extract(data []byte) (string, error) {
	return e.ExtractFn(data)
}

var _ docqa.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of docqa.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(data []byte, format docqa.Format) (string, error)
}

func (e *DocumentExtractor) Extract(data []byte, format docqa.Format) (string, error) {
	return e.ExtractFn(data, format)
}
