// Package gosseract provides an OCR implementation of docqa.Extractor
// backed by the Tesseract engine. It requires the tesseract-ocr native
// library to be installed.
package gosseract

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	_ "image/jpeg"

	"github.com/fwojciec/docqa"
	"github.com/otiai10/gosseract/v2"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Ensure Extractor implements docqa.Extractor at compile time.
var _ docqa.Extractor = (*Extractor)(nil)

// Extractor transcribes text from images using optical character recognition.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the image (png, jpeg, tiff, or bmp), normalizes it to a
// 3-channel RGB representation, and runs Tesseract over the result.
func (e *Extractor) Extract(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "decoding image: %v", err)
	}

	normalized, err := encodeRGB(img)
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "normalizing image: %v", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(normalized); err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "loading image into OCR engine: %v", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", docqa.Errorf(docqa.EEXTRACT, "running OCR: %v", err)
	}
	return text, nil
}

// encodeRGB redraws the image onto an opaque white canvas and re-encodes it
// as PNG. Indexed palettes, grayscale color modes, and alpha transparency are
// flattened in the process, which Tesseract handles more reliably than the
// source encodings.
func encodeRGB(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	rgb := image.NewRGBA(bounds)
	draw.Draw(rgb, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(rgb, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
