package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenlearn/lesson-engine/internal/api/shared"
	"github.com/lumenlearn/lesson-engine/internal/domain"
	"github.com/lumenlearn/lesson-engine/internal/generation"
	"github.com/lumenlearn/lesson-engine/internal/service"
)

// LessonPlanner defines the service interface the handler depends on.
type LessonPlanner interface {
	GenerateLesson(ctx context.Context, req service.LessonRequest) (*service.LessonPlan, error)
}

// LessonHandler handles lesson plan requests.
type LessonHandler struct {
	planner LessonPlanner
	logger  *slog.Logger
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(planner LessonPlanner, logger *slog.Logger) *LessonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LessonHandler{
		planner: planner,
		logger:  logger.With(slog.String("component", "lesson_handler")),
	}
}

// PlanLessonRequest is the request body for POST /api/lessons/plan.
type PlanLessonRequest struct {
	Topic           string `json:"topic"            validate:"required,min=2,max=200"`
	Complexity      string `json:"complexity"       validate:"omitempty,oneof=simple medium complex"`
	LearningStyle   string `json:"learning_style"   validate:"omitempty,oneof=video mixed reading hands_on"`
	SkillLevel      string `json:"skill_level"      validate:"omitempty,oneof=beginner intermediate expert"`
	Role            string `json:"role"             validate:"omitempty,oneof=professional career_changer"`
	SessionsPerWeek int    `json:"sessions_per_week" validate:"gte=0,lte=14"`
	SpacedLearning  bool   `json:"spaced_learning"`
}

// PlanLesson handles POST /api/lessons/plan.
func (h *LessonHandler) PlanLesson(w http.ResponseWriter, r *http.Request) {
	var req PlanLessonRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan, err := h.planner.GenerateLesson(r.Context(), toServiceRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTopic):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Lesson topic cannot be empty")
		case errors.Is(err, generation.ErrNoProvidersAvailable):
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				"No generation providers are configured", err)
		default:
			var exhausted *generation.ProvidersExhaustedError
			if errors.As(err, &exhausted) {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
					"All generation providers failed", err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to generate lesson plan", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, plan)
}

// toServiceRequest maps the wire request to the service request, applying
// the documented defaults for omitted fields.
func toServiceRequest(req PlanLessonRequest) service.LessonRequest {
	out := service.LessonRequest{
		Topic:           req.Topic,
		Complexity:      domain.TopicComplexity(req.Complexity),
		Style:           domain.LearningStyle(req.LearningStyle),
		SkillLevel:      domain.SkillLevel(req.SkillLevel),
		Role:            domain.LearnerRole(req.Role),
		SessionsPerWeek: req.SessionsPerWeek,
		SpacedLearning:  req.SpacedLearning,
	}
	if out.Complexity == "" {
		out.Complexity = domain.ComplexityMedium
	}
	if out.Style == "" {
		out.Style = domain.StyleMixed
	}
	if out.SkillLevel == "" {
		out.SkillLevel = domain.SkillBeginner
	}
	return out
}
