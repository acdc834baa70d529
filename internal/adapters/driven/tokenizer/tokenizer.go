// Package tokenizer counts model tokens using the tiktoken BPE tables.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.TokenCounter = (*Counter)(nil)

// DefaultEncoding is the BPE table shared by the gpt-4o and
// text-embedding-3 model families.
const DefaultEncoding = "cl100k_base"

// Counter counts tokens with a tiktoken encoding. If the encoding tables
// cannot be loaded it falls back to a whitespace word count, which keeps
// the answer diagnostic useful offline.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter creates a counter for the given model. The encoding tables are
// resolved from the model name, falling back to DefaultEncoding for models
// tiktoken does not know yet.
func NewCounter(model string) (*Counter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(DefaultEncoding)
		if err != nil {
			return nil, fmt.Errorf("loading token encoding: %w", err)
		}
	}
	return &Counter{enc: enc}, nil
}

// NewFallbackCounter creates a counter that approximates tokens by counting
// whitespace-separated words.
func NewFallbackCounter() *Counter {
	return &Counter{}
}

// Count returns the token count for the text.
func (c *Counter) Count(text string) int {
	if c.enc == nil {
		return len(strings.Fields(text))
	}
	return len(c.enc.Encode(text, nil, nil))
}
