// Package domain contains the core business entities for the MDWcare
// assistant: uploaded policy documents, their chunks, question verdicts,
// answer records and the per-session state that ties them together.
//
// The domain layer has no dependencies on adapters or external services.
package domain
