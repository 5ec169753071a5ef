package generation

import "context"

// Request describes a single text-generation call. It is immutable per call.
type Request struct {
	// Prompt is the full prompt text. Must be non-empty.
	Prompt string

	// Structured requests strict machine-parseable (JSON) output.
	Structured bool

	// MaxTokens bounds the output size. Zero means the provider default.
	MaxTokens int
}

// Provider is the capability set every text-generation backend implements.
// A provider owns its network client and its rate-limit state exclusively;
// instances are safe for concurrent use, and concurrent callers serialize
// against the provider's minimum call interval.
type Provider interface {
	// Generate blocks until the provider's rate-limit interval has elapsed
	// since its own last call, then issues one network call and returns the
	// raw text. Network, authentication, and quota failures are all returned
	// as a *ProviderError; classifying them is the orchestrator's job.
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider's stable identifier, used for usage
	// attribution and logging.
	Name() string

	// Available reports whether the provider is credentialed. Unavailable
	// providers are skipped by the orchestrator without counting as failures.
	Available() bool

	// Cleanup releases any held network client. It is idempotent and safe to
	// call on a never-initialized provider.
	Cleanup() error
}
