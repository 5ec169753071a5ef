package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scripted Provider for orchestrator tests.
type fakeProvider struct {
	name       string
	available  bool
	text       string
	err        error
	calls      int
	cleanups   int
	cleanupErr error
}

func (f *fakeProvider) Generate(_ context.Context, _ Request) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Cleanup() error {
	f.cleanups++
	return f.cleanupErr
}

func TestOrchestratorFirstSuccessWins(t *testing.T) {
	t.Parallel()

	first := &fakeProvider{name: "gemini", available: true, text: "from gemini"}
	second := &fakeProvider{name: "groq", available: true, text: "from groq"}
	o := NewOrchestrator(nil, first, second)

	text, err := o.Generate(context.Background(), Request{Prompt: "explain goroutines"})
	require.NoError(t, err)
	assert.Equal(t, "from gemini", text)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "providers after the first success must not be invoked")

	stats := o.UsageStats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Calls["gemini"])
	assert.Equal(t, 0, stats.Calls["groq"])
}

func TestOrchestratorSkipsUnavailableProviders(t *testing.T) {
	t.Parallel()

	missing := &fakeProvider{name: "gemini", available: false, text: "never"}
	backup := &fakeProvider{name: "mistral", available: true, text: "from mistral"}
	o := NewOrchestrator(nil, missing, backup)

	text, err := o.Generate(context.Background(), Request{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "from mistral", text)
	assert.Equal(t, 0, missing.calls, "unavailable provider must not be invoked")

	stats := o.UsageStats()
	assert.Equal(t, 0, stats.Calls["gemini"], "result must never attribute to an unavailable provider")
	assert.Equal(t, 1, stats.Calls["mistral"])
}

func TestOrchestratorFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		firstErr error
	}{
		{
			name:     "quota error falls through quietly",
			firstErr: errors.New("429: quota exceeded for this model"),
		},
		{
			name:     "transient error falls through",
			firstErr: errors.New("connection reset by peer"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			failing := &fakeProvider{name: "gemini", available: true, err: tc.firstErr}
			backup := &fakeProvider{name: "groq", available: true, text: "ok"}
			o := NewOrchestrator(nil, failing, backup)

			text, err := o.Generate(context.Background(), Request{Prompt: "p"})
			require.NoError(t, err)
			assert.Equal(t, "ok", text)
			assert.Equal(t, 1, failing.calls)
		})
	}
}

func TestOrchestratorAllProvidersFail(t *testing.T) {
	t.Parallel()

	lastErr := errors.New("internal server error")
	a := &fakeProvider{name: "gemini", available: true, err: errors.New("quota exceeded")}
	b := &fakeProvider{name: "groq", available: false}
	c := &fakeProvider{name: "openrouter", available: true, err: lastErr}
	o := NewOrchestrator(nil, a, b, c)

	_, err := o.Generate(context.Background(), Request{Prompt: "p"})
	require.Error(t, err)

	var exhausted *ProvidersExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, []string{"gemini", "openrouter"}, exhausted.Attempted,
		"error must list exactly the credentialed providers, in order")
	assert.ErrorIs(t, err, lastErr, "error must reference the last failure")

	stats := o.UsageStats()
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.Percent)
}

func TestOrchestratorNoProvidersAvailable(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil,
		&fakeProvider{name: "gemini", available: false},
		&fakeProvider{name: "groq", available: false})

	_, err := o.Generate(context.Background(), Request{Prompt: "p"})
	assert.ErrorIs(t, err, ErrNoProvidersAvailable)
}

func TestOrchestratorEmptyPrompt(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(nil, &fakeProvider{name: "gemini", available: true, text: "x"})
	_, err := o.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestOrchestratorUsagePercentages(t *testing.T) {
	t.Parallel()

	a := &fakeProvider{name: "gemini", available: true, text: "a"}
	o := NewOrchestrator(nil, a)

	for i := 0; i < 4; i++ {
		_, err := o.Generate(context.Background(), Request{Prompt: "p"})
		require.NoError(t, err)
	}

	stats := o.UsageStats()
	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 100.0, stats.Percent["gemini"], 0.001)
}

func TestOrchestratorCleanupSwallowsErrors(t *testing.T) {
	t.Parallel()

	bad := &fakeProvider{name: "gemini", available: true, cleanupErr: errors.New("close failed")}
	good := &fakeProvider{name: "groq", available: true}
	o := NewOrchestrator(nil, bad, good)

	o.Cleanup()
	o.Cleanup() // idempotent

	assert.Equal(t, 2, bad.cleanups)
	assert.Equal(t, 2, good.cleanups, "a misbehaving provider must not block releasing the others")
}

func TestIsQuotaError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "quota marker", err: errors.New("Quota exceeded for quota metric"), expected: true},
		{name: "rate limit marker", err: errors.New("Rate limit reached for requests"), expected: true},
		{name: "status code marker", err: errors.New("unexpected status 429"), expected: true},
		{name: "resource exhausted", err: errors.New("rpc error: RESOURCE_EXHAUSTED"), expected: true},
		{name: "plain network error", err: errors.New("dial tcp: i/o timeout"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsQuotaError(tc.err))
		})
	}
}
