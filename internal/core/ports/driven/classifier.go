package driven

import "github.com/mdwcare/mdwcare-cli/internal/core/domain"

// Classifier decides whether a question is in-domain and non-abusive.
// Kept behind a single-method interface so the keyword strategy can later
// be swapped for a learned classifier without touching the orchestrator.
type Classifier interface {
	// Classify returns the relevance/safety verdict for a question.
	// Pure with respect to its input; implementations may memoize.
	Classify(question string) domain.Verdict
}
