// Package pdf extracts plain text from uploaded résumé PDFs.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFileType is returned when the uploaded file is not a PDF.
	ErrUnsupportedFileType = errors.New("only PDF files are supported")
	// ErrExtractionFailed is returned when a PDF cannot be parsed into text.
	ErrExtractionFailed = errors.New("could not extract text from PDF")
)

var pdfMagic = []byte("%PDF-")

// Extractor produces page-ordered plain text from PDF bytes. The zero value
// is ready to use.
type Extractor struct{}

// Extract parses the file and returns its text, pages concatenated in page
// order. Files whose name or content does not declare a PDF are rejected
// with ErrUnsupportedFileType before any parsing is attempted. Scanned,
// image-only documents come back empty and are reported as extraction
// failures; there is no OCR fallback.
func (Extractor) Extract(filename string, data []byte) (string, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") || !bytes.HasPrefix(data, pdfMagic) {
		return "", ErrUnsupportedFileType
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtractionFailed, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %s", ErrExtractionFailed, i, err)
		}
		pages = append(pages, text)
	}

	result := normalizeWhitespace(strings.Join(pages, "\n"))
	if result == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrExtractionFailed)
	}

	return result, nil
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
