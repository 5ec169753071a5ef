package lesson

import (
	"fmt"

	"github.com/lumenlearn/lesson-engine/internal/domain"
)

// Part count bounds.
const (
	minParts = 1
	maxParts = 5
)

// defaultParts is used for complexity/skill combinations outside the table.
const defaultParts = 2

// durationByStyle maps learning style to optimal per-part minutes. Passive,
// attention-limited modes get shorter parts; active modes get longer ones.
var durationByStyle = map[domain.LearningStyle]int{
	domain.StyleVideo:   15,
	domain.StyleMixed:   20,
	domain.StyleReading: 25,
	domain.StyleHandsOn: 30,
}

// partsTable maps (topic complexity, skill level) to part count. More
// complex topics need more parts; more skilled learners need fewer.
var partsTable = map[domain.TopicComplexity]map[domain.SkillLevel]int{
	domain.ComplexitySimple: {
		domain.SkillBeginner:     2,
		domain.SkillIntermediate: 1,
		domain.SkillExpert:       1,
	},
	domain.ComplexityMedium: {
		domain.SkillBeginner:     3,
		domain.SkillIntermediate: 2,
		domain.SkillExpert:       1,
	},
	domain.ComplexityComplex: {
		domain.SkillBeginner:     4,
		domain.SkillIntermediate: 3,
		domain.SkillExpert:       2,
	},
}

// depthBySkill maps skill level to the baseline content depth.
var depthBySkill = map[domain.SkillLevel]domain.ContentDepth{
	domain.SkillBeginner:     domain.DepthFoundational,
	domain.SkillIntermediate: domain.DepthComprehensive,
	domain.SkillExpert:       domain.DepthAdvanced,
}

// CalculateStructure maps topic complexity, learning style, skill level, and
// role to a lesson structure. Part count is always in [1, 5]; duration is
// always one of {15, 20, 25, 30} minutes.
func CalculateStructure(
	complexity domain.TopicComplexity,
	style domain.LearningStyle,
	skill domain.SkillLevel,
	role domain.LearnerRole,
) domain.LessonStructure {
	parts := defaultParts
	if bySkill, ok := partsTable[complexity]; ok {
		if n, ok := bySkill[skill]; ok {
			parts = n
		}
	}

	// A career changer gets one extra part to build context they would
	// otherwise be assumed to have.
	if role == domain.RoleCareerChanger && parts < maxParts {
		parts++
	}

	depth, ok := depthBySkill[skill]
	if !ok {
		depth = domain.DepthComprehensive
	}
	// Professionals studying beyond foundations go straight to advanced
	// treatment; they can absorb the jump.
	if role == domain.RoleProfessional && depth != domain.DepthFoundational {
		depth = domain.DepthAdvanced
	}

	duration, ok := durationByStyle[style]
	if !ok {
		duration = durationByStyle[domain.StyleMixed]
	}

	return domain.LessonStructure{
		NumParts:        clampParts(parts),
		PartDurationMin: duration,
		Depth:           depth,
		Rationale:       rationale(complexity, style, skill, role, parts, depth),
	}
}

func clampParts(n int) int {
	if n < minParts {
		return minParts
	}
	if n > maxParts {
		return maxParts
	}
	return n
}

func rationale(
	complexity domain.TopicComplexity,
	style domain.LearningStyle,
	skill domain.SkillLevel,
	role domain.LearnerRole,
	parts int,
	depth domain.ContentDepth,
) string {
	s := fmt.Sprintf("%s topic for a %s learner: %d part(s) at %s depth, sized for %s-style sessions",
		complexity, skill, parts, depth, style)
	switch role {
	case domain.RoleCareerChanger:
		s += "; an extra part builds background context for the career change"
	case domain.RoleProfessional:
		s += "; professional context raises the treatment to its full depth"
	}
	return s
}
