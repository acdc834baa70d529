package driven

import "context"

// CompletionService produces answer text from a fully composed prompt.
//
// Temperature 0 is mandated throughout the pipeline so that repeated
// calls with identical prompts are stable. No retries are performed by
// implementations; a failed call surfaces verbatim to the caller.
type CompletionService interface {
	// Complete generates a completion for the prompt.
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)

	// ModelName returns the name of the completion model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompleteOptions configures a single completion call.
type CompleteOptions struct {
	// MaxTokens limits the generated output length. Zero means the
	// model default.
	MaxTokens int

	// Temperature controls randomness. The orchestrator always passes
	// zero for deterministic answers.
	Temperature float64
}
