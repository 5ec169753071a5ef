package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"topic": "goroutines"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"topic":"goroutines"}`, rr.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	ctx := SetTraceID(context.Background())
	req = req.WithContext(ctx)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp.Error)
	assert.Equal(t, GetTraceID(ctx), resp.TraceID)
	assert.NotEmpty(t, resp.TraceID)
}

func TestRespondWithErrorAndLogNeverLeaksRawError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()

	rawErr := errors.New("upstream rejected api_key=sk_live_secret1234")
	RespondWithErrorAndLog(rr, req, http.StatusServiceUnavailable, "All generation providers failed", rawErr)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "All generation providers failed")
	assert.NotContains(t, rr.Body.String(), "sk_live_secret1234",
		"raw error detail must stay out of the client response")
}
