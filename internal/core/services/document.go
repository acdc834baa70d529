package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mdwcare/mdwcare-cli/internal/chunker"
	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driving"
	"github.com/mdwcare/mdwcare-cli/internal/logger"
	"github.com/mdwcare/mdwcare-cli/internal/normaliser"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultMaxDocuments caps how many documents a session may hold.
const DefaultMaxDocuments = 3

// DocumentService runs the upload pipeline: extract, normalise, chunk,
// store on the session. Failures leave the session untouched.
type DocumentService struct {
	registry     driven.ExtractorRegistry
	chunkSize    int
	maxDocuments int
}

// NewDocumentService creates a document service.
// Zero chunkSize or maxDocuments select the defaults.
func NewDocumentService(registry driven.ExtractorRegistry, chunkSize, maxDocuments int) *DocumentService {
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}
	if maxDocuments <= 0 {
		maxDocuments = DefaultMaxDocuments
	}
	return &DocumentService{
		registry:     registry,
		chunkSize:    chunkSize,
		maxDocuments: maxDocuments,
	}
}

// Upload extracts, normalises and chunks a file, then adds it to the
// session.
func (s *DocumentService) Upload(
	ctx context.Context, sess *domain.Session, name string, kind domain.DocumentKind, r io.Reader,
) (*domain.Document, error) {
	logger.Section("Document Upload")
	logger.Debug("Name: %s, kind: %s", name, kind)

	if len(sess.Documents) >= s.maxDocuments {
		return nil, fmt.Errorf("session already holds %d documents: %w", s.maxDocuments, domain.ErrInvalidInput)
	}
	if _, ok := sess.Document(name); ok {
		return nil, fmt.Errorf("document %q: %w", name, domain.ErrAlreadyExists)
	}

	extractor, err := s.registry.For(kind)
	if err != nil {
		return nil, fmt.Errorf("file kind %q: %w", kind, err)
	}

	raw, err := extractor.Extract(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", name, err)
	}

	text := normaliser.Normalise(raw)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document %q: %w", name, domain.ErrNoContent)
	}

	chunks := chunker.Chunk(text, name, s.chunkSize)
	logger.Debug("Extracted %d chars, %d chunks", len(text), len(chunks))

	doc := domain.Document{
		Name:   name,
		Origin: domain.OriginUpload,
		Chunks: chunks,
	}
	if err := sess.AddDocument(doc); err != nil {
		return nil, fmt.Errorf("adding document %q: %w", name, err)
	}

	stored, _ := sess.Document(name)
	logger.Info("Uploaded %s (%d chunks)", name, len(chunks))
	return stored, nil
}

// Remove deletes an uploaded document by name.
func (s *DocumentService) Remove(_ context.Context, sess *domain.Session, name string) error {
	if err := sess.RemoveDocument(name); err != nil {
		return fmt.Errorf("removing document %q: %w", name, err)
	}
	logger.Info("Removed %s", name)
	return nil
}

// Reset clears all uploaded documents and the last answer. The index
// state survives so the next sync can drop the stale vector entries.
func (s *DocumentService) Reset(_ context.Context, sess *domain.Session) error {
	sess.Clear()
	logger.Info("Session cleared")
	return nil
}
