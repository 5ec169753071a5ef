// Package youtube implements the primary video discovery backend on the
// YouTube Data API v3. A search call discovers candidates, a videos.list
// call enriches them with statistics and playback status, and a
// channels.list call attaches channel authority data for the ranker.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/lumenlearn/lesson-engine/internal/domain"
	"github.com/lumenlearn/lesson-engine/internal/video"
)

const backendName = "youtube"

// ErrNotConfigured indicates the client was constructed without an API key.
var ErrNotConfigured = errors.New("youtube API key not configured")

// verifiedSubscriberFloor approximates the verified-channel badge, which the
// Data API does not expose. Channels at or above this subscriber count are
// treated as verified for authority scoring.
const verifiedSubscriberFloor = 100_000

// Client searches YouTube and scores results through the quality ranker.
type Client struct {
	apiKey    string
	ranker    *video.Ranker
	threshold float64
	logger    *slog.Logger

	mu  sync.Mutex
	svc *yt.Service // lazily initialized on first call
}

var (
	_ video.Backend        = (*Client)(nil)
	_ video.RankedSearcher = (*Client)(nil)
)

// New creates a YouTube client. An empty apiKey is accepted; calls will fail
// with ErrNotConfigured so the fallback service can route around it. A
// non-positive qualityThreshold selects video.DefaultQualityThreshold.
func New(logger *slog.Logger, apiKey string, ranker *video.Ranker, qualityThreshold float64) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if ranker == nil {
		ranker = video.NewRanker(logger)
	}
	return &Client{
		apiKey:    apiKey,
		ranker:    ranker,
		threshold: qualityThreshold,
		logger:    logger.With(slog.String("component", "youtube_backend")),
	}
}

func (c *Client) Name() string { return backendName }

// Search returns raw, unscored candidates for the topic.
func (c *Client) Search(ctx context.Context, topic string, maxResults int) ([]domain.VideoCandidate, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}

	searchResp, err := svc.Search.List([]string{"snippet"}).
		Q(topic).
		Type("video").
		VideoEmbeddable("true").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return c.enrich(ctx, svc, ids)
}

// SearchRanked discovers candidates, scores them, and returns the survivors
// of the configured quality threshold sorted best-first.
func (c *Client) SearchRanked(ctx context.Context, topic string, maxResults int) ([]domain.VideoCandidate, error) {
	// Over-fetch so threshold filtering still leaves enough results.
	raw, err := c.Search(ctx, topic, maxResults*3)
	if err != nil {
		return nil, err
	}

	ranked := c.rankAndFilter(raw, topic, maxResults)

	c.logger.DebugContext(ctx, "ranked search complete",
		slog.String("topic", topic),
		slog.Int("discovered", len(raw)),
		slog.Int("returned", len(ranked)))
	return ranked, nil
}

// rankAndFilter scores raw candidates, drops those below the configured
// threshold, and truncates to maxResults.
func (c *Client) rankAndFilter(raw []domain.VideoCandidate, topic string, maxResults int) []domain.VideoCandidate {
	ranked := c.ranker.Rank(raw, topic, 0)
	ranked = video.FilterByQualityThreshold(ranked, c.threshold)
	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// enrich loads statistics, duration, and playback status for the discovered
// IDs, then attaches channel subscriber counts.
func (c *Client) enrich(ctx context.Context, svc *yt.Service, ids []string) ([]domain.VideoCandidate, error) {
	videosResp, err := svc.Videos.List([]string{"snippet", "statistics", "contentDetails", "status"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video lookup failed: %w", err)
	}

	channelIDs := make(map[string]struct{})
	for _, v := range videosResp.Items {
		if v.Snippet != nil && v.Snippet.ChannelId != "" {
			channelIDs[v.Snippet.ChannelId] = struct{}{}
		}
	}
	subscribers, err := c.channelSubscribers(ctx, svc, channelIDs)
	if err != nil {
		// Authority data is an enrichment, not a prerequisite. Candidates
		// still rank on their remaining factors.
		c.logger.WarnContext(ctx, "channel lookup failed, continuing without subscriber counts",
			slog.String("error", err.Error()))
		subscribers = nil
	}

	candidates := make([]domain.VideoCandidate, 0, len(videosResp.Items))
	for _, v := range videosResp.Items {
		candidate, err := toCandidate(v, subscribers)
		if err != nil {
			c.logger.Warn("skipping unparseable video",
				slog.String("video_id", v.Id),
				slog.String("error", err.Error()))
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (c *Client) channelSubscribers(ctx context.Context, svc *yt.Service, ids map[string]struct{}) (map[string]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}

	resp, err := svc.Channels.List([]string{"statistics"}).Id(list...).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	subs := make(map[string]int64, len(resp.Items))
	for _, ch := range resp.Items {
		if ch.Statistics != nil {
			subs[ch.Id] = int64(ch.Statistics.SubscriberCount)
		}
	}
	return subs, nil
}

func (c *Client) ensureService(ctx context.Context) (*yt.Service, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}

	svc, err := yt.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	c.svc = svc
	return svc, nil
}

func toCandidate(v *yt.Video, subscribers map[string]int64) (domain.VideoCandidate, error) {
	if v.Snippet == nil || v.ContentDetails == nil {
		return domain.VideoCandidate{}, fmt.Errorf("video %s missing snippet or content details", v.Id)
	}

	duration, err := parseISODuration(v.ContentDetails.Duration)
	if err != nil {
		return domain.VideoCandidate{}, fmt.Errorf("video %s: %w", v.Id, err)
	}

	publishedAt, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
	if err != nil {
		return domain.VideoCandidate{}, fmt.Errorf("video %s has unparseable publish time %q", v.Id, v.Snippet.PublishedAt)
	}

	candidate := domain.VideoCandidate{
		ID:          v.Id,
		Title:       v.Snippet.Title,
		Description: v.Snippet.Description,
		Duration:    duration,
		PublishedAt: publishedAt,
		Source:      domain.SourcePrimary,
		Embeddable:  true,
	}
	if v.Statistics != nil {
		candidate.ViewCount = int64(v.Statistics.ViewCount)
		candidate.LikeCount = int64(v.Statistics.LikeCount)
	}
	if v.Status != nil {
		candidate.Embeddable = v.Status.Embeddable
	}
	// The Data API reports caption presence as the string "true"/"false" and
	// does not expose caption text to API-key clients.
	candidate.CaptionsAvailable = v.ContentDetails.Caption == "true"
	if subs, ok := subscribers[v.Snippet.ChannelId]; ok {
		candidate.ChannelSubscribers = subs
		candidate.ChannelVerified = subs >= verifiedSubscriberFloor
	}
	return candidate, nil
}

// parseISODuration converts the Data API's ISO-8601 duration strings
// (PT4M13S, PT1H2M, PT45S) into a time.Duration.
func parseISODuration(s string) (time.Duration, error) {
	if !strings.HasPrefix(s, "PT") {
		return 0, fmt.Errorf("unsupported duration format %q", s)
	}

	var total time.Duration
	var n int64
	for _, r := range s[2:] {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int64(r-'0')
		case r == 'H':
			total += time.Duration(n) * time.Hour
			n = 0
		case r == 'M':
			total += time.Duration(n) * time.Minute
			n = 0
		case r == 'S':
			total += time.Duration(n) * time.Second
			n = 0
		default:
			return 0, fmt.Errorf("unsupported duration format %q", s)
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("zero-length duration %q", s)
	}
	return total, nil
}
