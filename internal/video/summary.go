package video

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

// QualitySummary renders a human-readable rating for a scored candidate:
// a classification plus the sub-scores that drove it.
func QualitySummary(c domain.VideoCandidate) string {
	var rating string
	switch {
	case c.QualityScore >= 80:
		rating = "Excellent"
	case c.QualityScore >= 65:
		rating = "Good"
	case c.QualityScore >= 50:
		rating = "Fair"
	default:
		rating = "Poor"
	}

	var strengths, weaknesses []string
	for _, name := range sortedBreakdownKeys(c.ScoreBreakdown) {
		v := c.ScoreBreakdown[name]
		if v >= 70 {
			strengths = append(strengths, name)
		} else if v <= 40 {
			weaknesses = append(weaknesses, name)
		}
	}

	summary := fmt.Sprintf("%s (%.2f/100)", rating, c.QualityScore)
	if len(strengths) > 0 {
		summary += ", driven by strong " + strings.Join(strengths, ", ")
	}
	if len(weaknesses) > 0 {
		summary += ", held back by weak " + strings.Join(weaknesses, ", ")
	}
	return summary
}

func sortedBreakdownKeys(breakdown map[string]float64) []string {
	keys := make([]string, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
