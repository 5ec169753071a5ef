package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

func TestPromptContext(t *testing.T) {
	t.Parallel()

	t.Run("first part sets foundations", func(t *testing.T) {
		t.Parallel()
		got := PromptContext(domain.DepthFoundational, 1, 3)
		assert.Contains(t, got, "part 1 of 3")
		assert.Contains(t, got, "foundations")
		assert.Contains(t, got, "Assume no prior knowledge")
	})

	t.Run("middle part avoids repetition and lookahead", func(t *testing.T) {
		t.Parallel()
		got := PromptContext(domain.DepthComprehensive, 2, 3)
		assert.Contains(t, got, "without repeating")
		assert.Contains(t, got, "do not assume material from later parts")
	})

	t.Run("final part synthesizes", func(t *testing.T) {
		t.Parallel()
		got := PromptContext(domain.DepthAdvanced, 3, 3)
		assert.Contains(t, got, "final part")
		assert.Contains(t, got, "synthesis")
	})

	t.Run("single part stands alone", func(t *testing.T) {
		t.Parallel()
		got := PromptContext(domain.DepthAdvanced, 1, 1)
		assert.Contains(t, got, "stand alone")
	})

	t.Run("unknown depth falls back to comprehensive guidance", func(t *testing.T) {
		t.Parallel()
		got := PromptContext(domain.ContentDepth("mystery"), 1, 2)
		assert.Contains(t, got, "working familiarity")
	})
}
