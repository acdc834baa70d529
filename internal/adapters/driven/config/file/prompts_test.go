package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

func TestPromptStore_SeedsDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	s, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(driven.PromptGrounded)
	require.NoError(t, err)
	assert.Contains(t, got, "Migrant Domestic Workers")

	// First Load creates the user-editable files.
	_, err = os.Stat(filepath.Join(dir, driven.PromptGrounded+".txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, driven.PromptFallback+".txt"))
	assert.NoError(t, err)
}

func TestPromptStore_UserEditsVisibleAfterReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	s, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(driven.PromptFallback)
	require.NoError(t, err)

	custom := "Answer the question: %s"
	path := filepath.Join(dir, driven.PromptFallback+".txt")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0600))

	s.Reload()
	got, err := s.Load(driven.PromptFallback)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestPromptStore_UnknownNameFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	s, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load("nonexistent")
	assert.Error(t, err)
}

func TestPromptStore_Dir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	s, err := NewPromptStore(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, dir, s.Dir())
}
