package lesson

import "github.com/lumenlearn/lesson-engine/internal/domain"

// spacedReviewOffsets are the fixed follow-up reminders, in days after a
// part is completed, used to counter forgetting.
var spacedReviewOffsets = []int{2, 7, 30}

// CalculateSchedule spreads numParts across the learner's week. Parts are
// assigned to weeks by integer division; when spaced learning is requested,
// every part carries the fixed day-2/7/30 review offsets.
func CalculateSchedule(numParts, sessionsPerWeek int, spacedLearning bool) domain.Schedule {
	if numParts < 1 {
		numParts = 1
	}
	if sessionsPerWeek < 1 {
		sessionsPerWeek = 1
	}

	schedule := domain.Schedule{
		SessionsPerWeek: sessionsPerWeek,
		WeeksToComplete: float64(numParts) / float64(sessionsPerWeek),
		Parts:           make([]domain.PartSchedule, 0, numParts),
	}

	for part := 1; part <= numParts; part++ {
		entry := domain.PartSchedule{
			Part: part,
			Week: (part-1)/sessionsPerWeek + 1,
		}
		if spacedLearning {
			entry.ReviewOffsets = append([]int(nil), spacedReviewOffsets...)
		}
		schedule.Parts = append(schedule.Parts, entry)
	}
	return schedule
}
