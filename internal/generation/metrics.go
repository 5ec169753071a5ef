package generation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// providerCalls counts generation attempts per provider by outcome:
// "success", "quota", or "error".
var providerCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "lesson_engine",
		Subsystem: "generation",
		Name:      "provider_calls_total",
		Help:      "Generation calls per provider by outcome.",
	},
	[]string{"provider", "outcome"},
)
