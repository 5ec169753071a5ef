package lesson

import (
	"fmt"
	"strings"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

var depthGuidance = map[domain.ContentDepth]string{
	domain.DepthFoundational: "Assume no prior knowledge. Define every term on first use and " +
		"prefer concrete everyday analogies over formal definitions.",
	domain.DepthComprehensive: "Assume working familiarity with the basics. Cover the main " +
		"concepts thoroughly, including common pitfalls and trade-offs.",
	domain.DepthAdvanced: "Assume solid prior experience. Skip introductory material and focus " +
		"on depth, edge cases, internals, and expert-level practice.",
}

// PromptContext produces depth- and position-specific instructional guidance
// for one lesson part, to be embedded in the generation prompt.
func PromptContext(depth domain.ContentDepth, part, totalParts int) string {
	var b strings.Builder
	if g, ok := depthGuidance[depth]; ok {
		b.WriteString(g)
	} else {
		b.WriteString(depthGuidance[domain.DepthComprehensive])
	}

	switch {
	case totalParts <= 1:
		b.WriteString(" This is a single-part lesson: it must stand alone and cover the topic end to end.")
	case part == 1:
		b.WriteString(fmt.Sprintf(" This is part 1 of %d: set the foundations the later parts will build on, "+
			"and do not assume material from later parts.", totalParts))
	case part == totalParts:
		b.WriteString(fmt.Sprintf(" This is the final part (%d of %d): build on the earlier parts without "+
			"repeating their content, and close with a synthesis of the whole lesson.", part, totalParts))
	default:
		b.WriteString(fmt.Sprintf(" This is part %d of %d: build on the earlier parts without repeating "+
			"their content, and do not assume material from later parts.", part, totalParts))
	}
	return b.String()
}
