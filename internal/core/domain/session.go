package domain

// IndexState tracks what the embedding index currently holds for a session.
// It is the sole rebuild trigger: Sync compares the digest of the active
// chunk set against Digest and rebuilds only on mismatch.
type IndexState struct {
	// Digest is the content fingerprint of the last successfully
	// indexed chunk set.
	Digest string `json:"digest"`

	// ChunkIDs are the ids currently present in the vector store for
	// this session. Used to delete the previous set on rebuild.
	ChunkIDs []string `json:"chunk_ids"`

	// Built is false until the first successful sync, and reset to
	// false when a rebuild fails partway so the next sync retries
	// from scratch.
	Built bool `json:"built"`
}

// Session is the explicit session context object: uploaded documents, the
// last answer and the index state. It is created at session start, cleared
// on reset and discarded at session end. There are no ambient globals; the
// orchestrator receives it by reference.
type Session struct {
	// ID namespaces this session's entries in the vector store so a
	// process-wide store never leaks chunks across sessions.
	ID string `json:"id"`

	// Documents are the uploaded documents, in upload order.
	Documents []Document `json:"documents"`

	// LastAnswer is the most recent successful answer, nil before the
	// first question succeeds.
	LastAnswer *AnswerRecord `json:"last_answer,omitempty"`

	// Index is the embedding index state for this session.
	Index IndexState `json:"index"`
}

// ActiveChunks returns all chunks across uploaded documents in
// document-then-chunk order.
func (s *Session) ActiveChunks() []Chunk {
	var chunks []Chunk
	for _, doc := range s.Documents {
		chunks = append(chunks, doc.Chunks...)
	}
	return chunks
}

// Document returns the uploaded document with the given name.
func (s *Session) Document(name string) (*Document, bool) {
	for i := range s.Documents {
		if s.Documents[i].Name == name {
			return &s.Documents[i], true
		}
	}
	return nil, false
}

// AddDocument appends a document, rejecting duplicate names.
func (s *Session) AddDocument(doc Document) error {
	if _, ok := s.Document(doc.Name); ok {
		return ErrAlreadyExists
	}
	s.Documents = append(s.Documents, doc)
	return nil
}

// RemoveDocument deletes the document with the given name.
func (s *Session) RemoveDocument(name string) error {
	for i := range s.Documents {
		if s.Documents[i].Name == name {
			s.Documents = append(s.Documents[:i], s.Documents[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear drops all uploaded documents and the last answer. The index state
// is kept so the next sync can delete the now-stale vector entries.
func (s *Session) Clear() {
	s.Documents = nil
	s.LastAnswer = nil
}
