// Package prompt composes the final instruction text sent to the
// completion model.
//
// There are exactly two templates: a grounded template used when retrieved
// context is available, and a fallback template used when it is not. The
// branch is selected solely by context non-emptiness; there is no memory
// across calls.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// defaultGrounded directs the model to answer strictly from the supplied
// context, supplement only when non-contradictory, and emit a fixed
// sentence when the context is insufficient.
const defaultGrounded = `You are a helpful assistant specializing in Singapore's MOM policies for hiring Migrant Domestic Workers (MDWs), confinement nannies, and elderly caregivers.

The user asked:
%s

Use ONLY the following extracted document content to answer:
%s

Instructions:
- First, try to answer strictly using the document content above.
- If clarity is missing, you MAY supplement with general MOM knowledge, but DO NOT contradict the content.
- Assume the eService may apply to both MDWs and confinement nannies unless specified.
- Include any URLs found (e.g. https://www.mom.gov.sg/...).
- If no relevant info is found, say: "I couldn't find a direct reference in the uploaded documents. Based on MOM policies, here's what you should know..."`

// defaultFallback directs the model to answer from general domain
// knowledge and emit a fixed sentence with an authoritative pointer when
// unsure.
const defaultFallback = `You are a helpful assistant specializing in Singapore's MOM policies for hiring MDWs, confinement nannies, and elderly caregivers.

The user asked:
%s

However, no relevant documents were retrieved.

Instructions:
- Please answer based on general MOM knowledge.
- If unsure, say: "I don't have enough information. Please refer to https://www.mom.gov.sg for more."`

// Composer builds prompts from a question and optional retrieved context.
// Pure function of its inputs; no state, no randomness.
type Composer struct {
	store driven.PromptStore
}

// NewComposer creates a composer. The store is optional; when nil the
// embedded default templates are used.
func NewComposer(store driven.PromptStore) *Composer {
	return &Composer{store: store}
}

// Compose returns the grounded prompt when context is non-empty and the
// fallback prompt otherwise. Question and context are embedded verbatim.
func (c *Composer) Compose(question, context string) string {
	if strings.TrimSpace(context) == "" {
		return fmt.Sprintf(c.template(driven.PromptFallback, defaultFallback), question)
	}
	return fmt.Sprintf(c.template(driven.PromptGrounded, defaultGrounded), question, context)
}

// template loads a named template from the store, falling back to the
// embedded default on any failure.
func (c *Composer) template(name, fallback string) string {
	if c.store == nil {
		return fallback
	}
	tmpl, err := c.store.Load(name)
	if err != nil || tmpl == "" {
		return fallback
	}
	return tmpl
}

// DefaultTemplates returns the embedded templates keyed by prompt name.
// File-based prompt stores seed user-editable files from these.
func DefaultTemplates() map[string]string {
	return map[string]string{
		driven.PromptGrounded: defaultGrounded,
		driven.PromptFallback: defaultFallback,
	}
}
