// Package file persists the session context as a JSON file so uploads and
// index state survive across CLI invocations.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SessionStore = (*Store)(nil)

const sessionFile = "session.json"

// Store is a JSON file-backed session store.
type Store struct {
	mu       sync.Mutex
	filePath string
}

// NewStore creates a session store under dataDir.
// If dataDir is empty, defaults to ~/.mdwcare/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mdwcare", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &Store{filePath: filepath.Join(dataDir, sessionFile)}, nil
}

// Load returns the persisted session, or a fresh one with a new id if no
// session file exists. A corrupt file is treated as absent so the CLI can
// always start.
func (s *Store) Load() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return newSession(), nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return newSession(), nil
	}
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	return &sess, nil
}

// Save persists the session. The file is written atomically via a rename
// so a crash mid-write never leaves a truncated session behind.
func (s *Store) Save(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.filePath
}

func newSession() *domain.Session {
	return &domain.Session{ID: uuid.NewString()}
}
