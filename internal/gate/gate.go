// Package gate pre-filters incoming questions before retrieval.
//
// Classification is a case-insensitive substring match of the lower-cased
// question against two fixed keyword sets: an in-domain vocabulary and a
// prohibited-content vocabulary. Unsafe questions are rejected before
// relevance is even surfaced; irrelevant-but-safe questions get a distinct
// rejection. Both short-circuit retrieval and synthesis.
package gate

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure Gate implements the interface.
var _ driven.Classifier = (*Gate)(nil)

// DefaultCacheSize bounds the verdict memo cache.
const DefaultCacheSize = 128

// relevantKeywords is the in-domain vocabulary. A question is relevant
// when any of these appears as a substring.
var relevantKeywords = []string{
	// Core MDW-related
	"mdw", "maid", "helper", "domestic worker", "migrant",
	"employment agency", "accredited agency", "agency license",
	"work permit", "pass", "ipa", "in-principle approval",
	"employer", "employment contract", "contract terms",
	"rest day", "day off", "levy", "monthly levy",
	"placement fee", "transfer helper", "new helper",
	"replacement", "termination", "notice period",
	"insurance", "medical insurance", "personal accident insurance",
	"medical checkup", "six-monthly medical", "pregnancy test",
	"security bond", "orientation programme", "settling-in programme",
	"onboarding", "medical examination", "form submission",
	"mdw portal", "mom portal", "employment history",
	"employer eligibility", "hiring eligibility",
	"living conditions", "housing", "accommodation",
	"employer responsibilities", "employer obligations",
	"salary", "wages", "remittance", "bank account",
	"agency dispute", "complaint", "termination process",

	// Nanny/childcare-specific
	"nanny", "childcare", "babysitter", "infant care", "toddler care",
	"child safety", "child supervision", "child development",
	"feeding schedule", "nap schedule", "toilet training",
	"home-based childcare", "nanny duties", "childcare expectations",
	"early childhood", "pediatric first aid", "cpr training",
	"diaper changing", "milk preparation", "infant hygiene",
	"learning activities", "playtime supervision", "storytelling",
	"sleep routine", "discipline policy", "child emotional support",
	"bonding with child", "parental instructions", "nanny checklist",
	"nannies", "confinement",
}

// prohibitedKeywords is the abuse vocabulary. Any substring match makes
// the question unsafe regardless of relevance.
var prohibitedKeywords = []string{
	"sex", "sexual", "nude", "naked", "intimacy", "intimate",
	"harass", "harassment", "molest", "rape", "assault", "abuse",
	"expose", "porn", "touch", "inappropriate", "kiss", "bed",
}

// Gate is the keyword-based relevance/safety classifier. Verdicts are
// memoized per question string in a bounded LRU so re-classifying the same
// question is free.
type Gate struct {
	relevant   []string
	prohibited []string
	cache      *lru.Cache[string, domain.Verdict]
}

// Option configures the gate.
type Option func(*Gate)

// WithKeywords overrides the default keyword sets. Intended for tests and
// for future domain reconfiguration.
func WithKeywords(relevant, prohibited []string) Option {
	return func(g *Gate) {
		g.relevant = relevant
		g.prohibited = prohibited
	}
}

// New creates a gate with the default MOM policy vocabulary and a verdict
// cache of DefaultCacheSize entries.
func New(opts ...Option) *Gate {
	g := &Gate{
		relevant:   relevantKeywords,
		prohibited: prohibitedKeywords,
	}
	for _, opt := range opts {
		opt(g)
	}

	// Only errs on non-positive size.
	cache, err := lru.New[string, domain.Verdict](DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	g.cache = cache

	return g
}

// Classify returns the relevance/safety verdict for a question.
// Deterministic and free of external calls.
func (g *Gate) Classify(question string) domain.Verdict {
	if v, ok := g.cache.Get(question); ok {
		return v
	}

	lowered := strings.ToLower(question)
	v := domain.Verdict{
		Relevant: matchesAny(lowered, g.relevant),
		Safe:     !matchesAny(lowered, g.prohibited),
	}

	g.cache.Add(question, v)
	return v
}

// CacheLen reports how many verdicts are memoized. Exposed for tests.
func (g *Gate) CacheLen() int {
	return g.cache.Len()
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
