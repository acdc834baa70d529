// Package chunker splits normalised text into fixed-size, order-preserving
// chunks for embedding.
package chunker

import (
	"github.com/google/uuid"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 300

// Split cuts text into contiguous, non-overlapping slices of exactly size
// characters; the final slice may be shorter. Concatenating the output in
// order reproduces text exactly.
func Split(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if text == "" {
		return nil
	}

	slices := make([]string, 0, len(text)/size+1)
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		slices = append(slices, text[start:end])
	}
	return slices
}

// Chunk wraps each slice of text into a domain.Chunk with a freshly
// generated id and the originating document name as source. Ids are never
// reused: re-chunking identical text produces new ids, which is why
// re-indexing is digest-driven rather than id-driven.
func Chunk(text, source string, size int) []domain.Chunk {
	slices := Split(text, size)
	if len(slices) == 0 {
		return nil
	}

	chunks := make([]domain.Chunk, len(slices))
	for i, s := range slices {
		chunks[i] = domain.Chunk{
			ID:     uuid.New().String(),
			Text:   s,
			Source: source,
		}
	}
	return chunks
}
