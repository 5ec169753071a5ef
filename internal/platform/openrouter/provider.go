// Package openrouter implements the generation.Provider capability set on
// the OpenRouter gateway. As the last resort in the chain it retries one
// failed call once, and keeps a small 1s buffer between calls since the
// gateway multiplexes many upstream models with unknown limits.
package openrouter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/platform/chatapi"
)

const (
	providerName   = "openrouter"
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "meta-llama/llama-3.3-70b-instruct:free"
	minInterval    = time.Second
	retryDelay     = 2 * time.Second
)

// Provider is the generic-gateway backend.
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

// New creates an openrouter provider. An empty apiKey yields an unavailable
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
		logger:  logger.With(slog.String("component", "openrouter_provider")),
	}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Available() bool { return p.apiKey != "" }

// Generate waits out the buffer interval, then issues the completion call
// with a single retry on failure.
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

	client := p.ensureClient()
	var text string
	err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(retryDelay)),
		func(ctx context.Context) error {
			result, cerr := client.Complete(ctx, req.Prompt, chatapi.CompletionOptions{
				MaxTokens: req.MaxTokens,
				JSONMode:  req.Structured,
			})
			if cerr != nil {
				p.logger.DebugContext(ctx, "completion attempt failed",
					slog.String("error", cerr.Error()))
				return retry.RetryableError(cerr)
			}
			text = result
			return nil
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
