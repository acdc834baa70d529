package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a document with the same name was
	// already uploaded this session.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown file kind.
	// Only pdf, docx and txt uploads are accepted.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNoContent indicates extraction or normalisation produced no
	// usable text. The upload is rejected and no state is mutated.
	ErrNoContent = errors.New("no usable content")

	// Classification rejections. Both short-circuit retrieval and
	// synthesis; neither is ever escalated.

	// ErrUnsafeQuestion indicates the question matched a prohibited
	// keyword. Checked before relevance is even surfaced.
	ErrUnsafeQuestion = errors.New("question is unsafe or inappropriate")

	// ErrOffTopicQuestion indicates a safe question with no in-domain
	// keyword match.
	ErrOffTopicQuestion = errors.New("question is not related to MDW topics")

	// Capability errors.

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable. Retrieval is impossible without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVectorStoreUnavailable indicates the vector store could not be
	// opened or reached.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")

	// ErrCompletionUnavailable indicates the completion service is not
	// configured or failing. Answers cannot be synthesised without it.
	ErrCompletionUnavailable = errors.New("completion service unavailable")
)
