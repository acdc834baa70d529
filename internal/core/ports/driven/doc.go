// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): embedding, completion, vector storage,
// extraction, classification, prompts, tokenisation and session
// persistence.
package driven
