package driving

import (
	"context"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
)

// AnswerService answers questions against the session's uploaded documents.
type AnswerService interface {
	// Ask runs the end-to-end flow: gate, index sync, retrieval, prompt
	// composition, completion. On success the returned record is also
	// committed as the session's last answer. Unsafe and off-topic
	// questions fail with domain.ErrUnsafeQuestion and
	// domain.ErrOffTopicQuestion respectively, before any index or
	// model call.
	Ask(ctx context.Context, sess *domain.Session, question string) (*domain.AnswerRecord, error)
}
