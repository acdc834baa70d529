package driven

import "context"

// VectorStore is a key-value-vector store supporting the replace-and-query
// contract of the embedding index. Entries are namespaced per session; a
// process-wide store must never return entries from another namespace.
type VectorStore interface {
	// Get returns the subset of ids that exist in the namespace.
	Get(ctx context.Context, namespace string, ids []string) ([]string, error)

	// Add inserts entries into the namespace. Entries with existing ids
	// are overwritten.
	Add(ctx context.Context, namespace string, entries []VectorEntry) error

	// Delete removes entries by id. Unknown ids are ignored.
	Delete(ctx context.Context, namespace string, ids []string) error

	// Query returns up to k entries nearest to the query vector by
	// cosine similarity, best-first. An empty namespace yields an empty
	// result, not an error.
	Query(ctx context.Context, namespace string, vector []float32, k int) ([]VectorHit, error)

	// Close releases resources.
	Close() error
}

// VectorEntry is a stored chunk vector with its text and source metadata.
type VectorEntry struct {
	// ID is the chunk id.
	ID string

	// Vector is the embedding of Text.
	Vector []float32

	// Text is the chunk content, stored for retrieval.
	Text string

	// Source is the originating document name.
	Source string
}

// VectorHit is a similarity search result.
type VectorHit struct {
	// ID is the matched chunk id.
	ID string

	// Text is the matched chunk content.
	Text string

	// Source is the originating document name.
	Source string

	// Similarity is the cosine similarity score.
	Similarity float64
}
