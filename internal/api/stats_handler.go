package api

import (
	"log/slog"
	"net/http"

	"github.com/lumenlearn/lesson-engine/internal/api/shared"
	"github.com/lumenlearn/lesson-engine/internal/generation"
)

// UsageReporter exposes the orchestrator's usage snapshot.
type UsageReporter interface {
	UsageStats() generation.UsageStats
}

// StatsHandler serves provider usage statistics.
type StatsHandler struct {
	reporter UsageReporter
	logger   *slog.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(reporter UsageReporter, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		reporter: reporter,
		logger:   logger.With(slog.String("component", "stats_handler")),
	}
}

// GenerationStats handles GET /api/generation/stats.
func (h *StatsHandler) GenerationStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reporter.UsageStats())
}

// Healthz handles GET /healthz.
func Healthz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
