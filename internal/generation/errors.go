package generation

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the generation package
var (
	// ErrEmptyPrompt is returned when a request carries no prompt text.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrNotConfigured is returned when a provider is invoked without its
	// credential being present.
	ErrNotConfigured = errors.New("provider is not configured")

	// ErrInvalidResponse is returned when a provider response cannot be
	// parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrNoProvidersAvailable is returned when no provider in the chain is
	// credentialed.
	ErrNoProvidersAvailable = errors.New("no generation providers available")
)

// ProviderError wraps a failure from a single provider with the provider's
// name. Providers do not distinguish network, auth, and quota failures for
// the caller; the orchestrator classifies them heuristically.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ProvidersExhaustedError is the terminal failure raised when every
// credentialed provider in the chain failed. It carries the last underlying
// error and the names of the providers that were actually tried.
type ProvidersExhaustedError struct {
	// Attempted lists the credentialed providers, in the order they were tried.
	Attempted []string
	// LastErr is the failure from the last provider tried.
	LastErr error
}

func (e *ProvidersExhaustedError) Error() string {
	return fmt.Sprintf("all generation providers failed (tried: %s): %v",
		strings.Join(e.Attempted, ", "), e.LastErr)
}

func (e *ProvidersExhaustedError) Unwrap() error { return e.LastErr }

// quotaMarkers are the substrings used to heuristically classify a provider
// failure as quota exhaustion or rate limiting. Fragile by nature, but
// preserved because the upstream APIs only expose free-text messages.
var quotaMarkers = []string{
	"quota",
	"rate limit",
	"rate_limit",
	"resource exhausted",
	"resource_exhausted",
	"too many requests",
	"429",
}

// IsQuotaError reports whether err looks like a quota or rate-limit
// rejection. Such failures are expected on free tiers and are logged at a
// lower severity than genuine transport errors.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range quotaMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
