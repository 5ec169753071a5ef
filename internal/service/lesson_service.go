package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlearn/lesson-engine/internal/domain"
	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/lesson"
)

// TextGenerator defines the generation interface the service depends on.
// The provider orchestrator satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, req generation.Request) (string, error)
}

// VideoFinder defines the video discovery interface the service depends on.
// The fallback service satisfies it.
type VideoFinder interface {
	SearchWithFallback(ctx context.Context, topic string, maxResults int) domain.FallbackOutcome
}

// LessonRequest carries everything the service needs to assemble a lesson.
type LessonRequest struct {
	Topic           string
	Complexity      domain.TopicComplexity
	Style           domain.LearningStyle
	SkillLevel      domain.SkillLevel
	Role            domain.LearnerRole
	SessionsPerWeek int
	SpacedLearning  bool
}

// LessonPart is one generated unit of content placed on the schedule.
type LessonPart struct {
	Number        int    `json:"number"`
	Content       string `json:"content"`
	Week          int    `json:"suggested_week"`
	ReviewOffsets []int  `json:"review_offsets,omitempty"`
}

// LessonPlan is the assembled output: structure, schedule, generated parts,
// and the anchor video when the learning style calls for one.
type LessonPlan struct {
	ID             uuid.UUID              `json:"id"`
	Topic          string                 `json:"topic"`
	Structure      domain.LessonStructure `json:"structure"`
	Schedule       domain.Schedule        `json:"schedule"`
	Parts          []LessonPart           `json:"parts"`
	Video          *domain.VideoCandidate `json:"video,omitempty"`
	VideoSource    domain.VideoSource     `json:"video_source"`
	FallbackReason domain.FallbackReason  `json:"fallback_reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// LessonService assembles lesson plans.
type LessonService struct {
	generator  TextGenerator
	finder     VideoFinder
	logger     *slog.Logger
	maxResults int
}

// NewLessonService creates a lesson service. The generator is required; a
// nil finder disables video discovery and every plan reports SourceNone.
func NewLessonService(generator TextGenerator, finder VideoFinder, maxResults int, logger *slog.Logger) (*LessonService, error) {
	if generator == nil {
		return nil, fmt.Errorf("text generator cannot be nil")
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonService{
		generator:  generator,
		finder:     finder,
		logger:     logger.With(slog.String("component", "lesson_service")),
		maxResults: maxResults,
	}, nil
}

// GenerateLesson computes the structure and schedule for the request, then
// generates each part's content through the provider chain. Video-flavored
// lessons also get an anchor video; not finding one is recorded on the plan,
// never returned as an error.
func (s *LessonService) GenerateLesson(ctx context.Context, req LessonRequest) (*LessonPlan, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, NewLessonServiceError("generate", "invalid request", ErrEmptyTopic)
	}
	if req.SessionsPerWeek <= 0 {
		req.SessionsPerWeek = 2
	}

	structure := lesson.CalculateStructure(req.Complexity, req.Style, req.SkillLevel, req.Role)
	schedule := lesson.CalculateSchedule(structure.NumParts, req.SessionsPerWeek, req.SpacedLearning)

	plan := &LessonPlan{
		ID:          uuid.New(),
		Topic:       req.Topic,
		Structure:   structure,
		Schedule:    schedule,
		VideoSource: domain.SourceNone,
		CreatedAt:   time.Now().UTC(),
	}

	parts := make([]LessonPart, 0, structure.NumParts)
	for i := 1; i <= structure.NumParts; i++ {
		prompt := buildPartPrompt(req, structure, i)
		content, err := s.generator.Generate(ctx, generation.Request{Prompt: prompt})
		if err != nil {
			return nil, NewLessonServiceError("generate",
				fmt.Sprintf("content generation for part %d of %d", i, structure.NumParts), err)
		}

		part := LessonPart{Number: i, Content: content}
		if i-1 < len(schedule.Parts) {
			part.Week = schedule.Parts[i-1].Week
			part.ReviewOffsets = schedule.Parts[i-1].ReviewOffsets
		}
		parts = append(parts, part)
	}
	plan.Parts = parts

	if s.finder != nil && wantsVideo(req.Style) {
		outcome := s.finder.SearchWithFallback(ctx, req.Topic, s.maxResults)
		plan.Video = outcome.Video
		plan.VideoSource = outcome.Source
		plan.FallbackReason = outcome.Reason
	}

	s.logger.InfoContext(ctx, "lesson plan assembled",
		slog.String("lesson_id", plan.ID.String()),
		slog.String("topic", req.Topic),
		slog.Int("parts", len(plan.Parts)),
		slog.String("video_source", string(plan.VideoSource)))
	return plan, nil
}

func wantsVideo(style domain.LearningStyle) bool {
	return style == domain.StyleVideo || style == domain.StyleMixed
}

// buildPartPrompt assembles the generation prompt for one part, including
// the position-aware continuity guidance.
func buildPartPrompt(req LessonRequest, structure domain.LessonStructure, part int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write part %d of a %d-part lesson on %q for a %s-level learner.\n",
		part, structure.NumParts, req.Topic, req.SkillLevel)
	fmt.Fprintf(&b, "The part should take about %d minutes to work through.\n", structure.PartDurationMin)
	if req.Role != domain.RoleNone {
		fmt.Fprintf(&b, "The learner is a %s.\n", strings.ReplaceAll(string(req.Role), "_", " "))
	}
	b.WriteString(lesson.PromptContext(structure.Depth, part, structure.NumParts))
	return b.String()
}
