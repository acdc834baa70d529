package driving

import (
	"context"
	"io"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

// DocumentService manages the session's uploaded documents.
type DocumentService interface {
	// Upload extracts, normalises and chunks a file, then adds it to the
	// session. Returns the stored document. Fails without mutating state
	// when the file kind is unsupported, the name is a duplicate, or no
	// usable text survives normalisation.
	Upload(ctx context.Context, sess *domain.Session, name string, kind domain.DocumentKind, r io.Reader) (*domain.Document, error)

	// Remove deletes an uploaded document by name.
	Remove(ctx context.Context, sess *domain.Session, name string) error

	// Reset clears all uploaded documents and the last answer.
	Reset(ctx context.Context, sess *domain.Session) error
}
