package driven

import (
	"context"
	"io"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

// ExtractorRegistry selects an extractor for a file kind.
type ExtractorRegistry interface {
	// For returns the extractor for a kind, or domain.ErrUnsupportedType.
	For(kind domain.DocumentKind) (Extractor, error)
}

// Extractor produces UTF-8 text for a named source from raw file bytes.
// Extraction failures are recoverable: the caller warns the user, produces
// no chunks and mutates no state. Empty output is treated identically to
// failure by the upload pipeline.
type Extractor interface {
	// Kind returns the file kind this extractor handles.
	Kind() domain.DocumentKind

	// Extract reads the file and returns its text content.
	Extract(ctx context.Context, r io.Reader) (string, error)
}
