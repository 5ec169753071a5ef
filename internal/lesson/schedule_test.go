package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSchedule(t *testing.T) {
	t.Parallel()

	t.Run("three parts at two sessions per week", func(t *testing.T) {
		t.Parallel()

		got := CalculateSchedule(3, 2, true)
		assert.InDelta(t, 1.5, got.WeeksToComplete, 0.001)
		require.Len(t, got.Parts, 3)

		assert.Equal(t, 1, got.Parts[0].Week)
		assert.Equal(t, 1, got.Parts[1].Week)
		assert.Equal(t, 2, got.Parts[2].Week)

		for _, p := range got.Parts {
			assert.Equal(t, []int{2, 7, 30}, p.ReviewOffsets,
				"spaced learning attaches the fixed review offsets to every part")
		}
	})

	t.Run("without spaced learning no offsets are attached", func(t *testing.T) {
		t.Parallel()

		got := CalculateSchedule(2, 1, false)
		require.Len(t, got.Parts, 2)
		for _, p := range got.Parts {
			assert.Empty(t, p.ReviewOffsets)
		}
	})

	t.Run("one session per week", func(t *testing.T) {
		t.Parallel()

		got := CalculateSchedule(4, 1, false)
		assert.InDelta(t, 4.0, got.WeeksToComplete, 0.001)
		for i, p := range got.Parts {
			assert.Equal(t, i+1, p.Week)
		}
	})

	t.Run("degenerate inputs are clamped", func(t *testing.T) {
		t.Parallel()

		got := CalculateSchedule(0, 0, false)
		assert.Len(t, got.Parts, 1)
		assert.Equal(t, 1, got.SessionsPerWeek)
	})
}
