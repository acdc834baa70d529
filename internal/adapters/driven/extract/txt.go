package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure TXT implements the interface.
var _ driven.Extractor = (*TXT)(nil)

// TXT extracts plain text files as-is.
type TXT struct{}

// NewTXT creates a plain text extractor.
func NewTXT() *TXT {
	return &TXT{}
}

// Kind returns the file kind this extractor handles.
func (e *TXT) Kind() domain.DocumentKind {
	return domain.KindTXT
}

// Extract reads the file content verbatim.
func (e *TXT) Extract(_ context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}
