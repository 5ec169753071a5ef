package domain

// TopicComplexity describes how involved a topic is to teach.
type TopicComplexity string

const (
	ComplexitySimple  TopicComplexity = "simple"
	ComplexityMedium  TopicComplexity = "medium"
	ComplexityComplex TopicComplexity = "complex"
)

// LearningStyle is the learner's preferred content modality. It drives the
// optimal per-part duration: passive modes get shorter parts, active modes
// get longer ones.
type LearningStyle string

const (
	StyleVideo   LearningStyle = "video"
	StyleMixed   LearningStyle = "mixed"
	StyleReading LearningStyle = "reading"
	StyleHandsOn LearningStyle = "hands_on"
)

// SkillLevel is the learner's current proficiency with the topic.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillExpert       SkillLevel = "expert"
)

// LearnerRole captures the learner's professional context. The zero value
// means no role was provided.
type LearnerRole string

const (
	RoleNone          LearnerRole = ""
	RoleProfessional  LearnerRole = "professional"
	RoleCareerChanger LearnerRole = "career_changer"
)

// ContentDepth controls how much prior knowledge a lesson part assumes.
type ContentDepth string

const (
	DepthFoundational  ContentDepth = "foundational"
	DepthComprehensive ContentDepth = "comprehensive"
	DepthAdvanced      ContentDepth = "advanced"
)

// LessonStructure is the output of the structure calculator: how many parts
// to produce, how long each should run, and how deep the content goes.
// It is computed fresh per request and never persisted.
type LessonStructure struct {
	NumParts        int          `json:"num_parts"`         // always in [1, 5]
	PartDurationMin int          `json:"part_duration_min"` // one of 15, 20, 25, 30
	Depth           ContentDepth `json:"content_depth"`
	Rationale       string       `json:"rationale"`
}

// PartSchedule places a single lesson part on the learner's calendar.
type PartSchedule struct {
	Part          int   `json:"part"`
	Week          int   `json:"suggested_week"`
	ReviewOffsets []int `json:"review_offsets,omitempty"` // days after completion
}

// Schedule is a spaced-repetition calendar for a whole lesson.
type Schedule struct {
	SessionsPerWeek int            `json:"sessions_per_week"`
	WeeksToComplete float64        `json:"weeks_to_complete"`
	Parts           []PartSchedule `json:"parts"`
}
