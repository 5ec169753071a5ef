// Package gemini implements the generation.Provider capability set using
// Google's Gemini API. It is the flagship free-tier backend and sits first
// in the priority chain: a 3s minimum call interval respects the free-tier
// quota, and there are no client-side retries so a failing call falls
// through to the next provider immediately.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/lumenlearn/lesson-engine/internal/generation"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash"
	minInterval  = 3 * time.Second
)

// structuredSuffix is appended to the prompt when strict machine-parseable
// output is requested. The Gemini call path shapes output through the prompt
// rather than a response-format parameter.
const structuredSuffix = "\n\nRespond with valid JSON only. Do not wrap the JSON in markdown code fences."

// Provider is the flagship free-tier backend.
type Provider struct {
	apiKey string
	model  string
	pacer  *generation.Pacer
	logger *slog.Logger

	mu     sync.Mutex
	client *genai.Client // lazily initialized on first call
}

var _ generation.Provider = (*Provider)(nil)

// New creates a gemini provider. An empty apiKey yields an unavailable
// provider rather than an error.
func New(logger *slog.Logger, apiKey, model string) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		apiKey: apiKey,
		model:  model,
		pacer:  generation.NewPacer(minInterval),
		logger: logger.With(slog.String("component", "gemini_provider")),
	}
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Available() bool { return p.apiKey != "" }

// Generate waits out the minimum interval since this provider's last call,
// then issues exactly one API call. Any failure is returned as-is for the
// orchestrator to classify; this provider fails fast to the next one.
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

	client, err := p.ensureClient(ctx)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
	}

	prompt := req.Prompt
	if req.Structured {
		prompt += structuredSuffix
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
	}
	text, err := extractText(resp, req.MaxTokens)
	if err != nil {
		return "", &generation.ProviderError{Provider: providerName, Err: err}
	}

	p.logger.DebugContext(ctx, "generation call succeeded",
		slog.Int("response_length", len(text)))
	return text, nil
}

// Cleanup drops the API client. Idempotent; safe on a never-initialized
// provider.
func (p *Provider) Cleanup() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.client = nil
	return nil
}

func (p *Provider) ensureClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	p.client = client
	return client, nil
}

// extractText pulls the response text out of the first candidate, applying
// the caller's output-size bound.
func extractText(resp *genai.GenerateContentResponse, maxLen int) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: response carried no text parts", generation.ErrInvalidResponse)
	}
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen]
	}
	return text, nil
}
