package driven

import "github.com/mdwcare/mdwcare-cli/internal/core/domain"

// SessionStore persists the session context between CLI invocations.
// A missing session is not an error: Load returns a fresh session with a
// newly assigned id.
type SessionStore interface {
	// Load returns the persisted session, or a new one if none exists.
	Load() (*domain.Session, error)

	// Save persists the session.
	Save(sess *domain.Session) error

	// Clear removes the persisted session.
	Clear() error
}
