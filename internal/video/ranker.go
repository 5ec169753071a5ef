package video

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

// Sub-score weights. They sum to 1.0 so the composite stays in [0, 100].
const (
	weightViews      = 0.30
	weightEngagement = 0.25
	weightAuthority  = 0.20
	weightTranscript = 0.15
	weightRecency    = 0.10
)

// DefaultQualityThreshold is the minimum composite score a candidate needs
// to be considered usable when the caller does not supply its own floor.
const DefaultQualityThreshold = 50.0

// viewFloor is the view count below which a video scores zero on the view
// sub-score.
const viewFloor = 10_000

// Ranker scores candidate videos with a weighted multi-factor formula and
// sorts them best-first. Scoring is deterministic given identical input.
type Ranker struct {
	logger *slog.Logger

	// now is injectable for recency tests.
	now func() time.Time
}

// NewRanker creates a quality ranker.
func NewRanker(logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{
		logger: logger.With(slog.String("component", "quality_ranker")),
		now:    time.Now,
	}
}

// Rank scores every candidate against the topic and returns the top
// maxResults sorted by descending score, with the original discovery order
// as tie-break. A candidate that fails to score is skipped and logged; a
// single bad record never aborts ranking of the remaining set.
func (r *Ranker) Rank(candidates []domain.VideoCandidate, topic string, maxResults int) []domain.VideoCandidate {
	scored := make([]domain.VideoCandidate, 0, len(candidates))
	for _, c := range candidates {
		if err := r.score(&c, topic); err != nil {
			r.logger.Warn("skipping malformed candidate",
				slog.String("video_id", c.ID),
				slog.String("error", err.Error()))
			continue
		}
		scored = append(scored, c)
	}

	// Stable sort keeps discovery order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].QualityScore > scored[j].QualityScore
	})

	if maxResults > 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

// FilterByQualityThreshold removes candidates scoring below min. A
// non-positive min falls back to DefaultQualityThreshold.
func FilterByQualityThreshold(candidates []domain.VideoCandidate, min float64) []domain.VideoCandidate {
	if min <= 0 {
		min = DefaultQualityThreshold
	}
	kept := make([]domain.VideoCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.QualityScore >= min {
			kept = append(kept, c)
		}
	}
	return kept
}

// score computes the weighted composite and attaches it, with the sub-score
// breakdown, to the candidate.
func (r *Ranker) score(c *domain.VideoCandidate, topic string) error {
	if c.ID == "" {
		return fmt.Errorf("candidate has no identifier")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("candidate %s has non-positive duration", c.ID)
	}
	if c.ViewCount < 0 || c.LikeCount < 0 {
		return fmt.Errorf("candidate %s has negative counts", c.ID)
	}

	views := viewScore(c.ViewCount)
	engagement := engagementScore(c.LikeCount, c.ViewCount)
	authority := authorityScore(c.ChannelSubscribers, c.ChannelVerified)
	transcript := transcriptScore(c.Transcript, c.CaptionsAvailable, topic)
	recency := recencyScore(c.PublishedAt, r.now())

	composite := weightViews*views +
		weightEngagement*engagement +
		weightAuthority*authority +
		weightTranscript*transcript +
		weightRecency*recency

	c.QualityScore = round2(composite)
	c.ScoreBreakdown = map[string]float64{
		"views":      round2(views),
		"engagement": round2(engagement),
		"authority":  round2(authority),
		"transcript": round2(transcript),
		"recency":    round2(recency),
	}
	return nil
}

// viewScore: 0 below the 10k floor, linear 0-50 across 10k-100k, linear
// 50-100 across 100k-1M, capped at 100 above 1M. The piecewise-linear shape
// approximates a log scale without surprising cliffs.
func viewScore(views int64) float64 {
	switch {
	case views < viewFloor:
		return 0
	case views < 100_000:
		return float64(views-viewFloor) / 90_000 * 50
	case views < 1_000_000:
		return 50 + float64(views-100_000)/900_000*50
	default:
		return 100
	}
}

// engagementScore buckets the like/view ratio.
func engagementScore(likes, views int64) float64 {
	if views <= 0 {
		return 0
	}
	ratio := float64(likes) / float64(views)
	switch {
	case ratio < 0.01:
		return ratio / 0.01 * 20
	case ratio < 0.02:
		return 20 + (ratio-0.01)/0.01*20
	case ratio < 0.05:
		return 40 + (ratio-0.02)/0.03*30
	case ratio < 0.10:
		return 70 + (ratio-0.05)/0.05*30
	default:
		return 100
	}
}

// authorityScore is piecewise-linear on subscriber count (20 at 10k, 40 at
// 50k, 100 at 1M+) with a 10% bonus for verified channels, capped at 100.
func authorityScore(subscribers int64, verified bool) float64 {
	var score float64
	switch {
	case subscribers < 10_000:
		score = float64(subscribers) / 10_000 * 20
	case subscribers < 50_000:
		score = 20 + float64(subscribers-10_000)/40_000*20
	case subscribers < 1_000_000:
		score = 40 + float64(subscribers-50_000)/950_000*60
	default:
		score = 100
	}
	if verified {
		score = math.Min(score*1.10, 100)
	}
	return score
}

// recencyScore: 100 inside the optimal 6-36 month window, ramp 50-100 for
// younger videos, linear decay from 100 at 36 months to 0 at 120+ months.
func recencyScore(publishedAt, now time.Time) float64 {
	if publishedAt.IsZero() || publishedAt.After(now) {
		return 50
	}
	months := now.Sub(publishedAt).Hours() / 24 / 30.44
	switch {
	case months < 6:
		return 50 + months/6*50
	case months <= 36:
		return 100
	case months < 120:
		return 100 * (120 - months) / 84
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
