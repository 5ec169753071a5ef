package domain

import "time"

// VideoSource identifies which discovery backend produced a candidate.
type VideoSource string

const (
	SourcePrimary  VideoSource = "primary"
	SourceFallback VideoSource = "fallback"
	SourceNone     VideoSource = "none"
)

// FallbackReason explains why the primary video source was bypassed.
type FallbackReason string

const (
	ReasonNone                FallbackReason = "none"
	ReasonPrimaryNotAvailable FallbackReason = "primary_not_available"
	ReasonAllSourcesFailed    FallbackReason = "all_sources_failed"
)

// VideoCandidate is the raw metadata a discovery backend returns for one
// video, plus the quality score attached once the candidate has been ranked.
type VideoCandidate struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	Duration           time.Duration `json:"duration"`
	ViewCount          int64         `json:"view_count"`
	LikeCount          int64         `json:"like_count"`
	ChannelSubscribers int64         `json:"channel_subscribers"`
	ChannelVerified    bool          `json:"channel_verified"`
	PublishedAt        time.Time     `json:"published_at"`
	Transcript         string        `json:"transcript,omitempty"`
	CaptionsAvailable  bool          `json:"captions_available"`
	Embeddable         bool          `json:"embeddable"`
	Source             VideoSource   `json:"source"`

	// QualityScore is set by the ranker and is always in [0, 100].
	QualityScore float64 `json:"quality_score"`
	// ScoreBreakdown maps sub-score names to their unweighted values,
	// retained for explainability.
	ScoreBreakdown map[string]float64 `json:"score_breakdown,omitempty"`
}

// FallbackOutcome is the result of a two-tier video search: the selected
// video (nil when neither tier produced one), the source actually used, and
// the reason the primary source was bypassed, if it was.
type FallbackOutcome struct {
	Video  *VideoCandidate `json:"video,omitempty"`
	Source VideoSource     `json:"source"`
	Reason FallbackReason  `json:"reason"`
}
