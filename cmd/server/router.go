package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumenlearn/lesson-engine/internal/api"
	"github.com/lumenlearn/lesson-engine/internal/api/middleware"
)

// router assembles the HTTP routes for the server.
func (app *application) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	lessonHandler := api.NewLessonHandler(app.lessonService, app.logger)
	statsHandler := api.NewStatsHandler(app.orchestrator, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/lessons/plan", lessonHandler.PlanLesson)
		r.Get("/generation/stats", statsHandler.GenerationStats)
	})

	r.Get("/healthz", api.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
