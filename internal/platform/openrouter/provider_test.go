package openrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lesson-engine/internal/generation"
)

func TestGenerateRetriesOnceThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"second time lucky"}}]}`))
	}))
	defer server.Close()

	p := New(nil, "key", "model")
	p.baseURL = server.URL

	text, err := p.Generate(context.Background(), generation.Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "second time lucky", text)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestGenerateGivesUpAfterOneRetry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := New(nil, "key", "model")
	p.baseURL = server.URL

	_, err := p.Generate(context.Background(), generation.Request{Prompt: "hello"})
	require.Error(t, err)
	assert.Equal(t, int32(2), attempts.Load(), "exactly one retry")

	var perr *generation.ProviderError
	assert.ErrorAs(t, err, &perr)
}

func TestUnavailableWithoutCredential(t *testing.T) {
	t.Parallel()

	p := New(nil, "", "")
	assert.False(t, p.Available())
}
