package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// fakeEmbedder returns deterministic per-text vectors and counts calls.
type fakeEmbedder struct {
	vectors    map[string][]float32
	embedCalls int
	batchCalls int
	err        error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: make(map[string][]float32)}
}

func (f *fakeEmbedder) vectorFor(text string) []float32 {
	if v, ok := f.vectors[text]; ok {
		return v
	}
	// Crude but deterministic: direction depends on text length parity.
	if len(text)%2 == 0 {
		return []float32{1, 0}
	}
	return []float32{0, 1}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.embedCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vectorFor(text), nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.batchCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectorFor(t)
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int            { return 2 }
func (f *fakeEmbedder) ModelName() string          { return "fake-embedder" }
func (f *fakeEmbedder) Ping(context.Context) error { return nil }
func (f *fakeEmbedder) Close() error               { return nil }

// fakeVectorStore is an in-memory namespaced store that counts calls.
type fakeVectorStore struct {
	entries     map[string]map[string]driven.VectorEntry
	addCalls    int
	deleteCalls int
	queryCalls  int
	addErr      error
	deleteErr   error
}

func newFakeVectorStore() *fakeVectorStore {
	return &fakeVectorStore{entries: make(map[string]map[string]driven.VectorEntry)}
}

func (f *fakeVectorStore) Get(_ context.Context, namespace string, ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if _, ok := f.entries[namespace][id]; ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (f *fakeVectorStore) Add(_ context.Context, namespace string, entries []driven.VectorEntry) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	ns, ok := f.entries[namespace]
	if !ok {
		ns = make(map[string]driven.VectorEntry)
		f.entries[namespace] = ns
	}
	for _, e := range entries {
		ns[e.ID] = e
	}
	return nil
}

func (f *fakeVectorStore) Delete(_ context.Context, namespace string, ids []string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, id := range ids {
		delete(f.entries[namespace], id)
	}
	return nil
}

func (f *fakeVectorStore) Query(_ context.Context, namespace string, vector []float32, k int) ([]driven.VectorHit, error) {
	f.queryCalls++
	var hits []driven.VectorHit
	for _, e := range f.entries[namespace] {
		hits = append(hits, driven.VectorHit{
			ID:         e.ID,
			Text:       e.Text,
			Source:     e.Source,
			Similarity: cosine(vector, e.Vector),
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		return hits[i].ID < hits[j].ID
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func (f *fakeVectorStore) Close() error { return nil }

func (f *fakeVectorStore) count(namespace string) int {
	return len(f.entries[namespace])
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// fakeCompletion returns a canned answer and records the last prompt.
type fakeCompletion struct {
	answer     string
	lastPrompt string
	lastOpts   driven.CompleteOptions
	calls      int
	err        error
}

func (f *fakeCompletion) Complete(_ context.Context, prompt string, opts driven.CompleteOptions) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastOpts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeCompletion) ModelName() string          { return "fake-completion" }
func (f *fakeCompletion) Ping(context.Context) error { return nil }
func (f *fakeCompletion) Close() error               { return nil }

// fakeCounter approximates tokens by word count.
type fakeCounter struct{}

func (fakeCounter) Count(text string) int { return len(strings.Fields(text)) }
