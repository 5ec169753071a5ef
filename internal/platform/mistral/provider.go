// Package mistral implements the generation.Provider capability set on the
// Mistral API. It is the reliable backup in the chain: a conservative 6s
// minimum call interval protects the shared quota, and structured output
// uses the API's native JSON mode.
package mistral

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/platform/chatapi"
)

const (
	providerName   = "mistral"
	defaultBaseURL = "https://api.mistral.ai/v1"
	defaultModel   = "mistral-small-latest"
	minInterval    = 6 * time.Second
)

// Provider is the reliable-backup backend.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	pacer   *generation.Pacer
	logger  *slog.Logger

	mu     sync.Mutex
	client *chatapi.Client // lazily initialized
}

var _ generation.Provider = (*Provider)(nil)

// New creates a mistral provider. An empty apiKey yields an unavailable
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
		pacer:   generation.NewPacer(minInterval),
		logger:  logger.With(slog.String("component", "mistral_provider")),
	}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Available() bool { return p.apiKey != "" }

// Generate waits out the minimum interval since this provider's last call,
// then issues a single completion call.
func (p *Provider) Generate(ctx context.Context, req generation.Request) (string, error) {
	if !p.Available() {
		return "", &generation.ProviderError{Provider: providerName, Err: generation.ErrNotConfigured}
	}
	if req.Prompt == "" {
		return "", &generation.ProviderError{Provider: providerName, Err: generation.ErrEmptyPrompt}
	}

	if err := p.pacer.Wait(ctx); err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
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
