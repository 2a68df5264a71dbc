package docqa

import "sort"

// Extractor extracts plain text from raw document bytes of a single format.
type Extractor interface {
	// Extract converts document bytes to plain text.
	// Returns EEXTRACT if the bytes cannot be parsed as the format.
	Extract(data []byte) (string, error)
}

// DocumentExtractor extracts plain text from a document by format.
type DocumentExtractor interface {
	// Extract converts document bytes to plain text using the extractor
	// registered for the format. Returns EUNSUPPORTED for unknown formats.
	Extract(data []byte, format Format) (string, error)
}

// Ensure Registry implements DocumentExtractor at compile time.
var _ DocumentExtractor = (*Registry)(nil)

// Registry dispatches text extraction by document format.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[Format]Extractor)}
}

// Register adds an extractor for a format, replacing any previous one.
func (r *Registry) Register(format Format, e Extractor) {
	r.extractors[format] = e
}

// Extract converts document bytes to plain text using the extractor
// registered for the format.
func (r *Registry) Extract(data []byte, format Format) (string, error) {
	e, ok := r.extractors[format]
	if !ok {
		return "", Errorf(EUNSUPPORTED, "unsupported file format: %q", string(format))
	}
	return e.Extract(data)
}

// Formats returns all registered formats in sorted order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
