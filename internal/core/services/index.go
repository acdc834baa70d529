package services

import (
	"context"
	"fmt"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
	"github.com/mdwcare/mdwcare-cli/internal/logger"
)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 10

// Indexer keeps the vector store in step with the session's chunk set.
//
// Rebuilds are digest-gated: Sync fingerprints the active chunks and does
// nothing when the fingerprint matches the last successful build. A rebuild
// is a staged swap, new entries are added before the previous set is
// deleted, so a failure partway never leaves the index empty. Chunk ids are
// freshly generated on every chunking pass, so the new and old id sets
// cannot collide.
type Indexer struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIndexer creates an indexer.
func NewIndexer(embedder driven.EmbeddingService, store driven.VectorStore) *Indexer {
	return &Indexer{embedder: embedder, store: store}
}

// Sync brings the session's vector namespace up to date with its active
// chunks. A no-op when the content digest is unchanged since the last
// successful build.
func (ix *Indexer) Sync(ctx context.Context, sess *domain.Session) error {
	chunks := sess.ActiveChunks()
	digest := domain.DigestChunks(chunks)

	if sess.Index.Built && sess.Index.Digest == digest {
		logger.Debug("Index up to date (digest %.12s)", digest)
		return nil
	}

	logger.Section("Index Rebuild")
	logger.Debug("Chunks: %d, digest: %.12s", len(chunks), digest)

	previous := sess.Index.ChunkIDs
	sess.Index.Built = false

	newIDs := make([]string, 0, len(chunks))
	if len(chunks) > 0 {
		texts := make([]string, len(chunks))
		for i, c := range chunks {
			texts[i] = c.Text
		}

		vectors, err := ix.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding %d chunks: %w", len(chunks), err)
		}
		if len(vectors) != len(chunks) {
			return fmt.Errorf("embedding count mismatch: %d vectors for %d chunks: %w",
				len(vectors), len(chunks), domain.ErrEmbeddingUnavailable)
		}

		entries := make([]driven.VectorEntry, len(chunks))
		for i, c := range chunks {
			entries[i] = driven.VectorEntry{
				ID:     c.ID,
				Vector: vectors[i],
				Text:   c.Text,
				Source: c.Source,
			}
			newIDs = append(newIDs, c.ID)
		}

		if err := ix.store.Add(ctx, sess.ID, entries); err != nil {
			return fmt.Errorf("adding %d entries: %w", len(entries), err)
		}
	}

	// After a failed rebuild the recorded id set can include ids that were
	// just re-added; never delete those.
	stale := previous[:0:0]
	for _, id := range previous {
		current := false
		for _, nid := range newIDs {
			if id == nid {
				current = true
				break
			}
		}
		if !current {
			stale = append(stale, id)
		}
	}

	if len(stale) > 0 {
		if err := ix.store.Delete(ctx, sess.ID, stale); err != nil {
			// The new set is live but the stale one still answers queries.
			// Record both id sets unbuilt so the next sync replaces them.
			sess.Index.ChunkIDs = append(stale, newIDs...)
			return fmt.Errorf("deleting %d stale entries: %w", len(stale), err)
		}
	}

	sess.Index = domain.IndexState{
		Digest:   digest,
		ChunkIDs: newIDs,
		Built:    true,
	}
	logger.Info("Index rebuilt: %d entries", len(newIDs))
	return nil
}

// Query embeds the question and returns the k nearest chunks from the
// session's namespace, best-first.
func (ix *Indexer) Query(ctx context.Context, sess *domain.Session, question string, k int) ([]driven.VectorHit, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := ix.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	hits, err := ix.store.Query(ctx, sess.ID, vector, k)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	logger.Debug("Retrieved %d chunks", len(hits))
	return hits, nil
}
