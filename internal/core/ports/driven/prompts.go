package driven

// PromptStore provides access to LLM prompt templates. Implementations may
// load prompts from files, embed them in the binary, or both.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptGrounded is the template used when retrieved context is
	// available. It expects two %s placeholders: question, then context.
	PromptGrounded = "grounded"

	// PromptFallback is the template used when no relevant context was
	// retrieved. It expects one %s placeholder: the question.
	PromptFallback = "fallback"
)
