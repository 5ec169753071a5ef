package generation

import (
	"context"
	"log/slog"
	"sync"
)

// Orchestrator holds providers in a fixed priority order (highest quality or
// cheapest first) and tries them sequentially until one succeeds. Sequential
// fallback rather than a parallel race is deliberate: it minimizes wasted
// spend on metered backends and keeps usage statistics meaningful. The
// latency cost of a dead provider is bounded by that provider's own call
// timeout.
type Orchestrator struct {
	providers []Provider
	logger    *slog.Logger

	mu    sync.Mutex
	usage map[string]int
}

// UsageStats reports per-provider call counts, the total, and each
// provider's share of the total. With zero recorded calls the percentages
// are omitted and the raw zero counts are returned.
type UsageStats struct {
	Total   int                `json:"total"`
	Calls   map[string]int     `json:"calls"`
	Percent map[string]float64 `json:"percent,omitempty"`
}

// NewOrchestrator creates an orchestrator over the given providers. Order is
// priority order; the slice is used as given.
func NewOrchestrator(logger *slog.Logger, providers ...Provider) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	usage := make(map[string]int, len(providers))
	for _, p := range providers {
		usage[p.Name()] = 0
	}
	return &Orchestrator{
		providers: providers,
		logger:    logger.With(slog.String("component", "generation_orchestrator")),
		usage:     usage,
	}
}

// Generate tries each provider in priority order and returns the first
// successful result. Providers without credentials are skipped without
// counting as failures. Quota and rate-limit rejections are expected on free
// tiers and logged at debug; other failures are logged as warnings. If every
// credentialed provider fails, a *ProvidersExhaustedError is returned naming
// the last error and the providers that were tried.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (string, error) {
	if req.Prompt == "" {
		return "", ErrEmptyPrompt
	}

	var lastErr error
	attempted := make([]string, 0, len(o.providers))

	for _, p := range o.providers {
		name := p.Name()
		if !p.Available() {
			o.logger.DebugContext(ctx, "skipping provider without credentials",
				slog.String("provider", name))
			continue
		}
		attempted = append(attempted, name)

		text, err := p.Generate(ctx, req)
		if err == nil {
			o.recordUsage(name)
			providerCalls.WithLabelValues(name, "success").Inc()
			o.logger.InfoContext(ctx, "generation succeeded",
				slog.String("provider", name),
				slog.Int("response_length", len(text)))
			return text, nil
		}

		lastErr = err
		if IsQuotaError(err) {
			providerCalls.WithLabelValues(name, "quota").Inc()
			o.logger.DebugContext(ctx, "provider quota exhausted, trying next",
				slog.String("provider", name),
				slog.String("error", err.Error()))
		} else {
			providerCalls.WithLabelValues(name, "error").Inc()
			o.logger.WarnContext(ctx, "provider failed, trying next",
				slog.String("provider", name),
				slog.String("error", err.Error()))
		}

		// A cancelled context fails every remaining provider the same way;
		// stop early instead of burning through the chain.
		if ctx.Err() != nil {
			break
		}
	}

	if len(attempted) == 0 {
		return "", ErrNoProvidersAvailable
	}
	return "", &ProvidersExhaustedError{Attempted: attempted, LastErr: lastErr}
}

// UsageStats returns a snapshot of per-provider successful call counts.
func (o *Orchestrator) UsageStats() UsageStats {
	o.mu.Lock()
	defer o.mu.Unlock()

	stats := UsageStats{Calls: make(map[string]int, len(o.usage))}
	for name, n := range o.usage {
		stats.Calls[name] = n
		stats.Total += n
	}
	if stats.Total > 0 {
		stats.Percent = make(map[string]float64, len(o.usage))
		for name, n := range o.usage {
			stats.Percent[name] = float64(n) / float64(stats.Total) * 100
		}
	}
	return stats
}

// Cleanup releases every provider's network client. Individual cleanup
// failures are logged and swallowed so one misbehaving provider cannot block
// releasing the others. Safe to call more than once.
func (o *Orchestrator) Cleanup() {
	for _, p := range o.providers {
		if err := p.Cleanup(); err != nil {
			o.logger.Warn("provider cleanup failed",
				slog.String("provider", p.Name()),
				slog.String("error", err.Error()))
		}
	}
}

func (o *Orchestrator) recordUsage(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.usage[name]++
}
