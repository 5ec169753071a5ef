package chatapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	t.Parallel()

	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "generated text"}},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, "test-key", "test-model")
	text, err := c.Complete(context.Background(), "explain pointers",
		CompletionOptions{MaxTokens: 512, JSONMode: true})

	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 512, gotReq.MaxTokens)
	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
}

func TestCompleteErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		errContains string
	}{
		{
			name:        "rate limited",
			status:      http.StatusTooManyRequests,
			body:        `{"error":{"message":"rate limit exceeded"}}`,
			errContains: "429",
		},
		{
			name:        "api error payload",
			status:      http.StatusOK,
			body:        `{"error":{"message":"invalid api key"}}`,
			errContains: "invalid api key",
		},
		{
			name:        "no choices",
			status:      http.StatusOK,
			body:        `{"choices":[]}`,
			errContains: "no choices",
		},
		{
			name:        "empty content",
			status:      http.StatusOK,
			body:        `{"choices":[{"message":{"content":""}}]}`,
			errContains: "empty content",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `not json`,
			errContains: "parse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c := New(server.URL, "k", "m")
			_, err := c.Complete(context.Background(), "p", CompletionOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New("http://localhost:0", "", "m")
	c.Close()
	c.Close()
}
