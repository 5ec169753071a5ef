package video

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// searchOutcomes counts fallback searches by the source that ultimately
// served the result ("primary", "fallback", or "none").
var searchOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "lesson_engine",
		Subsystem: "video",
		Name:      "search_outcomes_total",
		Help:      "Video searches by serving source.",
	},
	[]string{"source"},
)
