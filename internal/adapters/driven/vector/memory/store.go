// Package memory provides an in-memory implementation of the vector store.
// Suitable for tests and single-run sessions; nothing survives the process.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is an in-memory, namespace-partitioned vector store using exact
// cosine similarity scans. Entry counts are small enough (hundreds of
// chunks per session) that approximate indexes would be overkill.
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]driven.VectorEntry
}

// New creates a new in-memory vector store.
func New() *Store {
	return &Store{
		namespaces: make(map[string]map[string]driven.VectorEntry),
	}
}

// Get returns the subset of ids that exist in the namespace.
func (s *Store) Get(_ context.Context, namespace string, ids []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.namespaces[namespace]
	if !ok {
		return nil, nil
	}

	var existing []string
	for _, id := range ids {
		if _, ok := entries[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

// Add inserts entries into the namespace, overwriting existing ids.
func (s *Store) Add(_ context.Context, namespace string, entries []driven.VectorEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = make(map[string]driven.VectorEntry, len(entries))
		s.namespaces[namespace] = ns
	}
	for _, e := range entries {
		ns[e.ID] = e
	}
	return nil
}

// Delete removes entries by id. Unknown ids are ignored.
func (s *Store) Delete(_ context.Context, namespace string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.namespaces[namespace]
	if !ok {
		return nil
	}
	for _, id := range ids {
		delete(entries, id)
	}
	return nil
}

// Query returns up to k entries nearest to the query vector, best-first.
// An empty namespace yields an empty result, not an error.
func (s *Store) Query(_ context.Context, namespace string, vector []float32, k int) ([]driven.VectorHit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.namespaces[namespace]
	if len(entries) == 0 || k <= 0 {
		return nil, nil
	}

	hits := make([]driven.VectorHit, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, driven.VectorHit{
			ID:         e.ID,
			Text:       e.Text,
			Source:     e.Source,
			Similarity: CosineSimilarity(vector, e.Vector),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].ID < hits[j].ID // stable order for equal scores
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 for mismatched lengths or zero vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
