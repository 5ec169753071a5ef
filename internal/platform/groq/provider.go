// Package groq implements the generation.Provider capability set on Groq's
// OpenAI-compatible API. Groq's free tier is generous enough that no minimum
// call interval is enforced.
package groq

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/platform/chatapi"
)

const (
	providerName   = "groq"
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
)

// Provider is the generous-free-tier backend.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	logger  *slog.Logger

	mu     sync.Mutex
	client *chatapi.Client // lazily initialized
}

var _ generation.Provider = (*Provider)(nil)

// New creates a groq provider. An empty apiKey yields an unavailable
// provider rather than an error.
func New(logger *slog.Logger, apiKey, model string) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		logger:  logger.With(slog.String("component", "groq_provider")),
	}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Available() bool { return p.apiKey != "" }

// Generate issues a single completion call. No pacing: the tier tolerates
// back-to-back calls.
func (p *Provider) Generate(ctx context.Context, req generation.Request) (string, error) {
	if !p.Available() {
		return "", &generation.ProviderError{Provider: providerName, Err: generation.ErrNotConfigured}
	}
	if req.Prompt == "" {
		return "", &generation.ProviderError{Provider: providerName, Err: generation.ErrEmptyPrompt}
	}

	text, err := p.ensureClient().Complete(ctx, req.Prompt, chatapi.CompletionOptions{
		MaxTokens: req.MaxTokens,
		JSONMode:  req.Structured,
	})
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
	}

	p.logger.DebugContext(ctx, "generation call succeeded",
		slog.Int("response_length", len(text)))
	return text, nil
}

// Cleanup releases the network client. Idempotent; safe on a
// never-initialized provider.
func (p *Provider) Cleanup() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
	return nil
}

func (p *Provider) ensureClient() *chatapi.Client {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		p.client = chatapi.New(p.baseURL, p.apiKey, p.model)
	}
	return p.client
}
