package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driving"
	"github.com/mdwcare/mdwcare-cli/internal/logger"
	"github.com/mdwcare/mdwcare-cli/internal/prompt"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// DefaultMaxAnswerTokens bounds the completion output length.
const DefaultMaxAnswerTokens = 1024

// momURLRe matches MOM authority links inside retrieved context.
var momURLRe = regexp.MustCompile(`https?://www\.mom\.gov\.sg[\w\-./?#%&=]*`)

// AnswerService orchestrates the question-answering flow: gate the
// question, sync the index, retrieve context, compose the prompt, call the
// completion model and commit the answer to the session.
//
// Temperature is pinned to zero so repeated questions over unchanged
// documents produce stable answers.
type AnswerService struct {
	classifier driven.Classifier
	indexer    *Indexer
	composer   *prompt.Composer
	completion driven.CompletionService
	tokens     driven.TokenCounter
	topK       int
	maxTokens  int
}

// NewAnswerService creates the orchestrator. Zero topK or maxTokens select
// the defaults.
func NewAnswerService(
	classifier driven.Classifier,
	indexer *Indexer,
	composer *prompt.Composer,
	completion driven.CompletionService,
	tokens driven.TokenCounter,
	topK, maxTokens int,
) *AnswerService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxAnswerTokens
	}
	return &AnswerService{
		classifier: classifier,
		indexer:    indexer,
		composer:   composer,
		completion: completion,
		tokens:     tokens,
		topK:       topK,
		maxTokens:  maxTokens,
	}
}

// Ask runs the end-to-end answering flow. The session's last answer is only
// replaced on success; any failure leaves it untouched.
func (s *AnswerService) Ask(ctx context.Context, sess *domain.Session, question string) (*domain.AnswerRecord, error) {
	logger.Section("Question")

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("empty question: %w", domain.ErrInvalidInput)
	}
	logger.Debug("Question: %q", question)

	// The gate runs before any index or model work so unsafe input never
	// reaches the API.
	verdict := s.classifier.Classify(question)
	if !verdict.Safe {
		return nil, domain.ErrUnsafeQuestion
	}
	if !verdict.Relevant {
		return nil, domain.ErrOffTopicQuestion
	}

	if err := s.indexer.Sync(ctx, sess); err != nil {
		return nil, fmt.Errorf("syncing index: %w", err)
	}

	hits, err := s.indexer.Query(ctx, sess, question, s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieving context: %w", err)
	}

	evidence := make([]string, len(hits))
	for i, h := range hits {
		evidence[i] = h.Text
	}
	contextText := strings.Join(evidence, "\n\n")
	urls := extractMOMLinks(contextText)
	logger.Debug("Context: %d chunks, %d links", len(hits), len(urls))

	promptText := s.composer.Compose(question, contextText)

	answer, err := s.completion.Complete(ctx, promptText, driven.CompleteOptions{
		MaxTokens:   s.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	record := &domain.AnswerRecord{
		Question:   question,
		Answer:     answer,
		URLs:       urls,
		TokenCount: s.tokens.Count(contextText),
		Evidence:   evidence,
	}
	sess.LastAnswer = record
	logger.Info("Answered (%d context tokens)", record.TokenCount)
	return record, nil
}

// extractMOMLinks returns the unique MOM authority links in text, sorted
// lexicographically.
func extractMOMLinks(text string) []string {
	matches := momURLRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}
	sort.Strings(urls)
	return urls
}
