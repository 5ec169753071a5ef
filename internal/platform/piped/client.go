// Package piped implements the fallback video discovery backend against a
// Piped API instance. Piped mirrors YouTube metadata without an API key or
// quota, which makes it the natural second tier when the primary backend is
// unavailable or exhausted.
package piped

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lumenlearn/lesson-engine/internal/domain"
	"github.com/lumenlearn/lesson-engine/internal/video"
)

const (
	backendName    = "piped"
	defaultBaseURL = "https://pipedapi.kavin.rocks"
	defaultTimeout = 15 * time.Second
)

// Client queries a Piped instance's search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ video.Backend = (*Client)(nil)

// New creates a piped client. An empty baseURL selects the public default
// instance.
func New(logger *slog.Logger, baseURL string) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With(slog.String("component", "piped_backend")),
	}
}

func (c *Client) Name() string { return backendName }

// searchResponse mirrors the subset of the Piped search payload we consume.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Type             string `json:"type"`
	URL              string `json:"url"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Duration         int64  `json:"duration"` // seconds
	Views            int64  `json:"views"`
	Uploaded         int64  `json:"uploaded"` // unix millis
	UploaderVerified bool   `json:"uploaderVerified"`
}

// Search returns raw candidates for the topic. Piped does not expose like
// counts or subscriber totals, so those stay zero and the candidates lean on
// the fallback tier's simpler validity filter rather than the full ranker.
func (c *Client) Search(ctx context.Context, topic string, maxResults int) ([]domain.VideoCandidate, error) {
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&filter=videos", c.baseURL, url.QueryEscape(topic))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("piped search failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("piped search returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse piped response: %w", err)
	}

	candidates := make([]domain.VideoCandidate, 0, maxResults)
	for _, item := range payload.Items {
		if item.Type != "stream" {
			continue
		}
		id := videoID(item.URL)
		if id == "" || item.Duration <= 0 {
			continue
		}
		candidates = append(candidates, domain.VideoCandidate{
			ID:              id,
			Title:           item.Title,
			Description:     item.ShortDescription,
			Duration:        time.Duration(item.Duration) * time.Second,
			ViewCount:       item.Views,
			ChannelVerified: item.UploaderVerified,
			PublishedAt:     time.UnixMilli(item.Uploaded).UTC(),
			Source:          domain.SourceFallback,
			// Piped proxies playback itself, so every result is usable.
			Embeddable: true,
		})
		if len(candidates) == maxResults {
			break
		}
	}

	c.logger.DebugContext(ctx, "fallback search complete",
		slog.String("topic", topic),
		slog.Int("results", len(candidates)))
	return candidates, nil
}

// videoID extracts the ID from a Piped watch URL such as "/watch?v=abc123".
func videoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("v")
}
