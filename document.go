package docqa

import "strings"

// Format identifies a supported document format, derived from a file extension.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
)

// IsImage reports whether the format is extracted via OCR.
func (f Format) IsImage() bool {
	switch f {
	case FormatPNG, FormatJPG, FormatJPEG, FormatTIFF, FormatBMP:
		return true
	}
	return false
}

// ParseFormat maps a file extension to a Format. The extension is matched
// case-insensitively and may carry a leading dot. Unknown extensions return
// EUNSUPPORTED identifying the offending extension.
func ParseFormat(ext string) (Format, error) {
	normalized := strings.ToLower(strings.TrimPrefix(ext, "."))
	switch Format(normalized) {
	case FormatPDF, FormatDOCX, FormatText, FormatPNG, FormatJPG, FormatJPEG, FormatTIFF, FormatBMP:
		return Format(normalized), nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported file format: %q", ext)
}

// Document represents an uploaded document awaiting extraction.
// The bytes are the source of truth and are not retained after extraction.
type Document struct {
	Data   []byte
	Format Format
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if len(d.Data) == 0 {
		return Errorf(EINVALID, "document bytes required")
	}
	if d.Format == "" {
		return Errorf(EINVALID, "document format required")
	}
	return nil
}
