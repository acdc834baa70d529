package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

func sessionWithChunks(chunks ...domain.Chunk) *domain.Session {
	return &domain.Session{
		ID: "sess-1",
		Documents: []domain.Document{{
			Name:   "policy.txt",
			Origin: domain.OriginUpload,
			Chunks: chunks,
		}},
	}
}

func TestIndexer_Sync_BuildsOnce(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(
		domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"},
		domain.Chunk{ID: "c2", Text: "rest day weekly", Source: "policy.txt"},
	)

	require.NoError(t, ix.Sync(context.Background(), sess))
	assert.True(t, sess.Index.Built)
	assert.Equal(t, []string{"c1", "c2"}, sess.Index.ChunkIDs)
	assert.Equal(t, 2, store.count("sess-1"))

	// Unchanged content is a no-op.
	require.NoError(t, ix.Sync(context.Background(), sess))
	assert.Equal(t, 1, embedder.batchCalls)
	assert.Equal(t, 1, store.addCalls)
}

func TestIndexer_Sync_RebuildsOnContentChange(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"})
	require.NoError(t, ix.Sync(context.Background(), sess))
	firstDigest := sess.Index.Digest

	// Re-chunking produces fresh ids even for similar content.
	sess.Documents[0].Chunks = []domain.Chunk{
		{ID: "c9", Text: "levy is 300 per month", Source: "policy.txt"},
	}
	require.NoError(t, ix.Sync(context.Background(), sess))

	assert.NotEqual(t, firstDigest, sess.Index.Digest)
	assert.Equal(t, []string{"c9"}, sess.Index.ChunkIDs)
	assert.Equal(t, 1, store.count("sess-1"))
	assert.Equal(t, 2, embedder.batchCalls)
	assert.Equal(t, 1, store.deleteCalls)
}

func TestIndexer_Sync_EmptySessionDropsStaleEntries(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"})
	require.NoError(t, ix.Sync(context.Background(), sess))

	sess.Clear()
	require.NoError(t, ix.Sync(context.Background(), sess))

	assert.True(t, sess.Index.Built)
	assert.Empty(t, sess.Index.ChunkIDs)
	assert.Equal(t, 0, store.count("sess-1"))
}

func TestIndexer_Sync_EmbedFailureLeavesIndexUnbuilt(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"})
	embedder.err = errors.New("embedding offline")

	require.Error(t, ix.Sync(context.Background(), sess))
	assert.False(t, sess.Index.Built)

	// Recovery rebuilds from scratch.
	embedder.err = nil
	require.NoError(t, ix.Sync(context.Background(), sess))
	assert.True(t, sess.Index.Built)
	assert.Equal(t, 1, store.count("sess-1"))
}

func TestIndexer_Sync_DeleteFailureRetriesBothSets(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"})
	require.NoError(t, ix.Sync(context.Background(), sess))

	sess.Documents[0].Chunks = []domain.Chunk{{ID: "c2", Text: "new text here", Source: "policy.txt"}}
	store.deleteErr = errors.New("store offline")

	require.Error(t, ix.Sync(context.Background(), sess))
	assert.False(t, sess.Index.Built)
	assert.ElementsMatch(t, []string{"c1", "c2"}, sess.Index.ChunkIDs)

	store.deleteErr = nil
	require.NoError(t, ix.Sync(context.Background(), sess))
	assert.Equal(t, []string{"c2"}, sess.Index.ChunkIDs)
	assert.Equal(t, 1, store.count("sess-1"))
}

func TestIndexer_Query(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	// Same-direction vectors rank first.
	embedder.vectors["levy details"] = []float32{1, 0}
	embedder.vectors["rest day rules"] = []float32{0, 1}
	embedder.vectors["how much levy"] = []float32{1, 0}

	sess := sessionWithChunks(
		domain.Chunk{ID: "c1", Text: "levy details", Source: "policy.txt"},
		domain.Chunk{ID: "c2", Text: "rest day rules", Source: "policy.txt"},
	)
	require.NoError(t, ix.Sync(context.Background(), sess))

	hits, err := ix.Query(context.Background(), sess, "how much levy", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "levy details", hits[0].Text)
	assert.Greater(t, hits[0].Similarity, hits[1].Similarity)
}

func TestIndexer_Query_IsolatedByNamespace(t *testing.T) {
	embedder := newFakeEmbedder()
	store := newFakeVectorStore()
	ix := NewIndexer(embedder, store)

	sess := sessionWithChunks(domain.Chunk{ID: "c1", Text: "levy is 300", Source: "policy.txt"})
	require.NoError(t, ix.Sync(context.Background(), sess))

	other := &domain.Session{ID: "sess-2"}
	hits, err := ix.Query(context.Background(), other, "levy", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
