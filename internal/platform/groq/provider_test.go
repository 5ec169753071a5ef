package groq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lesson-engine/internal/generation"
)

func TestGenerateAgainstStubServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"groq says hi"}}]}`))
	}))
	defer server.Close()

	p := New(nil, "key", "model")
	p.baseURL = server.URL

	text, err := p.Generate(context.Background(), generation.Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "groq says hi", text)
}

func TestGenerateWrapsQuotaRejection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	p := New(nil, "key", "model")
	p.baseURL = server.URL

	_, err := p.Generate(context.Background(), generation.Request{Prompt: "hello"})
	require.Error(t, err)

	var perr *generation.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "groq", perr.Provider)
	assert.True(t, generation.IsQuotaError(err),
		"a 429 from the API must classify as a quota error downstream")
}

func TestUnavailableWithoutCredential(t *testing.T) {
	t.Parallel()

	p := New(nil, "", "")
	assert.False(t, p.Available())

	_, err := p.Generate(context.Background(), generation.Request{Prompt: "p"})
	assert.ErrorIs(t, err, generation.ErrNotConfigured)
}

func TestCleanupIdempotent(t *testing.T) {
	t.Parallel()

	p := New(nil, "key", "")
	require.NoError(t, p.Cleanup())

	// Initialize the client, then clean up twice.
	_ = p.ensureClient()
	require.NoError(t, p.Cleanup())
	require.NoError(t, p.Cleanup())
}
