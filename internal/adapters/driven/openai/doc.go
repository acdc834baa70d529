// Package openai provides embedding and completion adapters backed by the
// OpenAI API. Both share a token-bucket rate limiter so bulk re-indexing
// stays inside API quotas.
package openai
