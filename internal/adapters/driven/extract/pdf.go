package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure PDF implements the interface.
var _ driven.Extractor = (*PDF)(nil)

// PDF extracts text from PDF documents. Non-ASCII bytes are replaced with
// spaces: MOM portal exports embed decorative glyphs that only pollute
// the chunk stream.
type PDF struct{}

// NewPDF creates a PDF extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// Kind returns the file kind this extractor handles.
func (e *PDF) Kind() domain.DocumentKind {
	return domain.KindPDF
}

// Extract reads the document and returns its text content.
func (e *PDF) Extract(_ context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading pdf file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", domain.ErrInvalidInput)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the upload.
			continue
		}
		b.WriteString(stripNonASCII(text))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// stripNonASCII replaces bytes outside the printable ASCII range with
// spaces, keeping newlines.
func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}
