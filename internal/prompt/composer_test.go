package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

type fakeStore struct {
	prompts map[string]string
	err     error
}

func (f *fakeStore) Load(name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.prompts[name], nil
}

func (f *fakeStore) Reload() {}

func TestCompose_GroundedBranch(t *testing.T) {
	c := NewComposer(nil)
	question := "What is the levy for hiring a helper?"
	context := "The levy is 300 per month. See https://www.mom.gov.sg/levy"

	got := c.Compose(question, context)
	assert.Contains(t, got, question)
	assert.Contains(t, got, context)
	assert.Contains(t, got, "Use ONLY the following extracted document content")
	assert.NotContains(t, got, "no relevant documents were retrieved")
}

func TestCompose_FallbackBranch(t *testing.T) {
	c := NewComposer(nil)
	question := "What is the levy for hiring a helper?"

	for _, context := range []string{"", "   ", "\n\n"} {
		got := c.Compose(question, context)
		assert.Contains(t, got, question)
		assert.Contains(t, got, "no relevant documents were retrieved")
		assert.NotContains(t, got, "Use ONLY")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	c := NewComposer(nil)
	a := c.Compose("q", "ctx")
	b := c.Compose("q", "ctx")
	assert.Equal(t, a, b)
}

func TestCompose_StoreOverride(t *testing.T) {
	store := &fakeStore{prompts: map[string]string{
		driven.PromptGrounded: "custom grounded: %s | %s",
		driven.PromptFallback: "custom fallback: %s",
	}}
	c := NewComposer(store)

	assert.Equal(t, "custom grounded: q | ctx", c.Compose("q", "ctx"))
	assert.Equal(t, "custom fallback: q", c.Compose("q", ""))
}

func TestCompose_StoreFailureFallsBackToDefaults(t *testing.T) {
	c := NewComposer(&fakeStore{err: errors.New("disk gone")})
	got := c.Compose("q", "ctx")
	assert.Contains(t, got, "Use ONLY the following extracted document content")
}

func TestDefaultTemplates(t *testing.T) {
	tmpl := DefaultTemplates()
	assert.Contains(t, tmpl, driven.PromptGrounded)
	assert.Contains(t, tmpl, driven.PromptFallback)
}
