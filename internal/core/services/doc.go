// Package services contains the core application logic: the upload
// pipeline, the digest-gated embedding index and the question-answering
// orchestrator. Services depend only on ports, never on adapters.
package services
