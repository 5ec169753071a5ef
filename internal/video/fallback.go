package video

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

// Tier-2 validity floor: the fallback source carries no quality signal, so
// only videos that are plausibly watched, embeddable, and lesson-sized pass.
const (
	fallbackViewFloor   = 1_000
	fallbackMinDuration = 4 * time.Minute
	fallbackMaxDuration = 60 * time.Minute
)

// FallbackService orchestrates primary-then-fallback video discovery.
// Tier 1 is the primary backend's ranked search; tier 2 is the fallback
// backend's own topic search with a minimal validity filter. Each tier's
// failures are recovered locally, so a single backend outage never aborts
// the overall search.
type FallbackService struct {
	primary  RankedSearcher
	fallback Backend
	cache    ResultCache // nil disables caching
	logger   *slog.Logger

	mu                sync.Mutex
	fallbackCount     int
	lastFallbackTopic string
}

// NewFallbackService creates the two-tier search service. cache may be nil.
func NewFallbackService(primary RankedSearcher, fallback Backend, cache ResultCache, logger *slog.Logger) *FallbackService {
	if primary == nil {
		panic("primary backend cannot be nil")
	}
	if fallback == nil {
		panic("fallback backend cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackService{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		logger:   logger.With(slog.String("component", "video_fallback_service")),
	}
}

// SearchWithFallback returns the best available video for the topic, the
// source that produced it, and a reason tag when the primary source was
// bypassed. Absence of video is a valid outcome, not an error.
func (s *FallbackService) SearchWithFallback(ctx context.Context, topic string, maxResults int) domain.FallbackOutcome {
	if maxResults <= 0 {
		maxResults = 5
	}

	if video := s.searchPrimary(ctx, topic, maxResults); video != nil {
		searchOutcomes.WithLabelValues(string(domain.SourcePrimary)).Inc()
		s.logger.DebugContext(ctx, "primary video selected",
			slog.String("topic", topic),
			slog.String("video_id", video.ID),
			slog.String("quality", QualitySummary(*video)))
		return domain.FallbackOutcome{
			Video:  video,
			Source: domain.SourcePrimary,
			Reason: domain.ReasonNone,
		}
	}

	if video := s.searchFallback(ctx, topic, maxResults); video != nil {
		s.recordFallback(topic)
		searchOutcomes.WithLabelValues(string(domain.SourceFallback)).Inc()
		return domain.FallbackOutcome{
			Video:  video,
			Source: domain.SourceFallback,
			Reason: domain.ReasonPrimaryNotAvailable,
		}
	}

	searchOutcomes.WithLabelValues(string(domain.SourceNone)).Inc()
	s.logger.InfoContext(ctx, "no usable video from any source", slog.String("topic", topic))
	return domain.FallbackOutcome{
		Source: domain.SourceNone,
		Reason: domain.ReasonAllSourcesFailed,
	}
}

// searchPrimary runs tier 1: cached or live ranked search against the
// primary backend. Returns nil when the tier yields nothing usable.
func (s *FallbackService) searchPrimary(ctx context.Context, topic string, maxResults int) *domain.VideoCandidate {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, topic, maxResults)
		if err != nil {
			s.logger.WarnContext(ctx, "video cache read failed",
				slog.String("topic", topic),
				slog.String("error", err.Error()))
		} else if len(cached) > 0 {
			top := cached[0]
			return &top
		}
	}

	ranked, err := s.primary.SearchRanked(ctx, topic, maxResults)
	if err != nil {
		s.logger.WarnContext(ctx, "primary video search failed, trying fallback source",
			slog.String("topic", topic),
			slog.String("backend", s.primary.Name()),
			slog.String("error", err.Error()))
		return nil
	}
	if len(ranked) == 0 {
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, topic, maxResults, ranked); err != nil {
			s.logger.WarnContext(ctx, "video cache write failed",
				slog.String("topic", topic),
				slog.String("error", err.Error()))
		}
	}

	top := ranked[0]
	return &top
}

// searchFallback runs tier 2: the fallback backend's own search with a
// "tutorial" qualifier and the minimal validity filter. Returns nil when the
// tier yields nothing usable.
func (s *FallbackService) searchFallback(ctx context.Context, topic string, maxResults int) *domain.VideoCandidate {
	candidates, err := s.fallback.Search(ctx, topic+" tutorial", maxResults)
	if err != nil {
		s.logger.WarnContext(ctx, "fallback video search failed",
			slog.String("topic", topic),
			slog.String("backend", s.fallback.Name()),
			slog.String("error", err.Error()))
		return nil
	}

	for _, c := range candidates {
		if validFallbackCandidate(c) {
			c.Source = domain.SourceFallback
			return &c
		}
	}
	return nil
}

// validFallbackCandidate applies the tier-2 floor: view count, embeddable
// flag, and a 4-60 minute duration window.
func validFallbackCandidate(c domain.VideoCandidate) bool {
	return c.ViewCount >= fallbackViewFloor &&
		c.Embeddable &&
		c.Duration >= fallbackMinDuration &&
		c.Duration <= fallbackMaxDuration
}

// SearchSource searches exactly one named source with no fallback, for
// diagnostics. The source must be the primary or fallback backend's name.
func (s *FallbackService) SearchSource(ctx context.Context, source, topic string, maxResults int) ([]domain.VideoCandidate, error) {
	if maxResults <= 0 {
		maxResults = 5
	}
	switch source {
	case s.primary.Name():
		return s.primary.SearchRanked(ctx, topic, maxResults)
	case s.fallback.Name():
		return s.fallback.Search(ctx, topic, maxResults)
	default:
		return nil, fmt.Errorf("unknown video source %q", source)
	}
}

// FallbackStats returns how many searches were served by the fallback source
// and the most recent topic that triggered a fallback.
func (s *FallbackService) FallbackStats() (count int, lastTopic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallbackCount, s.lastFallbackTopic
}

func (s *FallbackService) recordFallback(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbackCount++
	s.lastFallbackTopic = topic
}
