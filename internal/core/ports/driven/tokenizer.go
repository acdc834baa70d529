package driven

// TokenCounter estimates how many model tokens a text occupies. Used for
// the context-size diagnostic attached to each answer.
type TokenCounter interface {
	// Count returns the token count for the text.
	Count(text string) int
}
