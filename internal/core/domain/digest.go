package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestChunks computes a deterministic fingerprint over the texts of the
// given chunks, in document-then-chunk order. Equal digests mean the active
// content is unchanged and no re-embedding is needed.
//
// Chunk ids are deliberately excluded: they are regenerated on every
// chunking pass, so content hashing is the only stable change signal.
func DigestChunks(chunks []Chunk) string {
	h := sha256.New()
	for _, c := range chunks {
		h.Write([]byte(c.Text))
	}
	return hex.EncodeToString(h.Sum(nil))
}
