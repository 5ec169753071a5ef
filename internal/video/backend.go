package video

import (
	"context"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

// Backend executes a single "search by topic" call against one video source
// and returns raw candidate metadata, unscored.
type Backend interface {
	Search(ctx context.Context, topic string, maxResults int) ([]domain.VideoCandidate, error)
	Name() string
}

// RankedSearcher is the primary backend's richer search path: candidates are
// discovered, scored by the quality ranker, and returned sorted best-first
// with sub-threshold candidates already removed.
type RankedSearcher interface {
	SearchRanked(ctx context.Context, topic string, maxResults int) ([]domain.VideoCandidate, error)
	Name() string
}

// ResultCache stores ranked primary results keyed by topic and result limit.
// Implementations must treat a miss as (nil, nil). A nil cache is valid and
// disables caching.
type ResultCache interface {
	Get(ctx context.Context, topic string, limit int) ([]domain.VideoCandidate, error)
	Set(ctx context.Context, topic string, limit int, candidates []domain.VideoCandidate) error
}
