package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure CompletionService implements the interface.
var _ driven.CompletionService = (*CompletionService)(nil)

// Default configuration values.
const (
	DefaultCompletionModel   = "gpt-4o-mini"
	DefaultCompletionTimeout = 120 * time.Second
)

// CompletionConfig holds configuration for the completion service.
type CompletionConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL overrides the API base URL. Useful for Azure OpenAI,
	// compatible APIs and tests.
	BaseURL string

	// Model is the completion model (default: gpt-4o-mini).
	Model string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// RateLimit throttles requests; zero values use DefaultRateLimit.
	RateLimit RateLimitConfig
}

// CompletionService produces answers using the OpenAI chat completions API.
type CompletionService struct {
	client  *openai.Client
	model   string
	limiter *RateLimiter
}

// NewCompletionService creates a new OpenAI completion service.
func NewCompletionService(cfg CompletionConfig) (*CompletionService, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultCompletionModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultCompletionTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &CompletionService{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		limiter: NewRateLimiter(cfg.RateLimit),
	}, nil
}

// Complete generates a completion for the prompt. No automatic retries:
// failures surface verbatim so the user can decide to resubmit.
func (s *CompletionService) Complete(ctx context.Context, prompt string, opts driven.CompleteOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: effectiveTemperature(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		s.recordRateLimit(err)
		return "", fmt.Errorf("create chat completion: %w", errors.Join(domain.ErrCompletionUnavailable, err))
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// effectiveTemperature maps the requested temperature to what the client
// library sends. go-openai marshals Temperature with omitempty, so a true
// zero would be dropped and the API would apply its default of 1; the
// smallest non-zero float keeps determinism on the wire.
func effectiveTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

// ModelName returns the name of the completion model being used.
func (s *CompletionService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by listing models.
func (s *CompletionService) Ping(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *CompletionService) Close() error {
	return nil
}

// recordRateLimit inspects an API error and arms the backoff window on 429.
func (s *CompletionService) recordRateLimit(err error) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		s.limiter.RecordRateLimitError(0)
	}
}
