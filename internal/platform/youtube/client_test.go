package youtube

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yt "google.golang.org/api/youtube/v3"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

func TestParseISODuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "PT4M13S", want: 4*time.Minute + 13*time.Second},
		{input: "PT1H2M", want: time.Hour + 2*time.Minute},
		{input: "PT45S", want: 45 * time.Second},
		{input: "PT10M", want: 10 * time.Minute},
		{input: "PT1H", want: time.Hour},
		{input: "PT2H30M15S", want: 2*time.Hour + 30*time.Minute + 15*time.Second},
		{input: "P1DT1H", wantErr: true},
		{input: "4m13s", wantErr: true},
		{input: "PT", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseISODuration(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToCandidateMapsAPIFields(t *testing.T) {
	t.Parallel()

	v := &yt.Video{
		Id: "abc123",
		Snippet: &yt.VideoSnippet{
			Title:       "Go Concurrency Patterns",
			Description: "Deep dive into goroutines.",
			ChannelId:   "chan-1",
			PublishedAt: "2025-06-01T12:00:00Z",
		},
		ContentDetails: &yt.VideoContentDetails{Duration: "PT12M30S", Caption: "true"},
		Statistics:     &yt.VideoStatistics{ViewCount: 250_000, LikeCount: 9_000},
		Status:         &yt.VideoStatus{Embeddable: true},
	}
	subs := map[string]int64{"chan-1": 500_000}

	got, err := toCandidate(v, subs)
	require.NoError(t, err)

	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "Go Concurrency Patterns", got.Title)
	assert.Equal(t, 12*time.Minute+30*time.Second, got.Duration)
	assert.Equal(t, int64(250_000), got.ViewCount)
	assert.Equal(t, int64(9_000), got.LikeCount)
	assert.Equal(t, int64(500_000), got.ChannelSubscribers)
	assert.True(t, got.ChannelVerified, "500k subscribers crosses the verified floor")
	assert.True(t, got.CaptionsAvailable, "caption flag from contentDetails must carry through")
	assert.True(t, got.Embeddable)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), got.PublishedAt)
}

func TestToCandidateBelowVerifiedFloor(t *testing.T) {
	t.Parallel()

	v := &yt.Video{
		Id: "small",
		Snippet: &yt.VideoSnippet{
			Title:       "Niche tutorial",
			ChannelId:   "chan-2",
			PublishedAt: "2025-01-15T00:00:00Z",
		},
		ContentDetails: &yt.VideoContentDetails{Duration: "PT8M"},
		Status:         &yt.VideoStatus{Embeddable: false},
	}

	got, err := toCandidate(v, map[string]int64{"chan-2": 40_000})
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), got.ChannelSubscribers)
	assert.False(t, got.ChannelVerified)
	assert.False(t, got.CaptionsAvailable)
	assert.False(t, got.Embeddable)
}

func TestRankAndFilterHonorsConfiguredThreshold(t *testing.T) {
	t.Parallel()

	strong := domain.VideoCandidate{
		ID:                 "strong",
		Title:              "Go Concurrency Patterns",
		Duration:           12 * time.Minute,
		ViewCount:          900_000,
		LikeCount:          45_000,
		ChannelSubscribers: 800_000,
		ChannelVerified:    true,
		PublishedAt:        time.Now().AddDate(-1, 0, 0),
		Embeddable:         true,
	}
	weak := domain.VideoCandidate{
		ID:          "weak",
		Title:       "Low signal clip",
		Duration:    5 * time.Minute,
		ViewCount:   12_000,
		LikeCount:   200,
		PublishedAt: time.Now().AddDate(-9, 0, 0),
		Embeddable:  true,
	}
	raw := []domain.VideoCandidate{weak, strong}

	lenient := New(nil, "key", nil, 10)
	kept := lenient.rankAndFilter(raw, "go concurrency", 5)
	require.Len(t, kept, 2)
	assert.Equal(t, "strong", kept[0].ID, "ranking must stay best-first")

	strict := New(nil, "key", nil, 95)
	kept = strict.rankAndFilter(raw, "go concurrency", 5)
	assert.LessOrEqual(t, len(kept), 1,
		"raising the configured threshold must remove weaker candidates")
	for _, c := range kept {
		assert.GreaterOrEqual(t, c.QualityScore, 95.0)
	}

	defaulted := New(nil, "key", nil, 0)
	kept = defaulted.rankAndFilter(raw, "go concurrency", 5)
	for _, c := range kept {
		assert.GreaterOrEqual(t, c.QualityScore, 50.0,
			"non-positive threshold falls back to the default floor")
	}
}

func TestToCandidateRejectsIncompleteRecords(t *testing.T) {
	t.Parallel()

	_, err := toCandidate(&yt.Video{Id: "no-snippet"}, nil)
	assert.Error(t, err)

	_, err = toCandidate(&yt.Video{
		Id:             "bad-duration",
		Snippet:        &yt.VideoSnippet{PublishedAt: "2025-01-01T00:00:00Z"},
		ContentDetails: &yt.VideoContentDetails{Duration: "bogus"},
	}, nil)
	assert.Error(t, err)
}

func TestSearchWithoutAPIKey(t *testing.T) {
	t.Parallel()

	c := New(nil, "", nil, 0)
	_, err := c.Search(context.Background(), "go testing", 5)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSearchRejectsEmptyTopic(t *testing.T) {
	t.Parallel()

	c := New(nil, "key", nil, 0)
	_, err := c.Search(context.Background(), "", 5)
	assert.Error(t, err)
}
