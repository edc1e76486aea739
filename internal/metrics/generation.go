package metrics

import "github.com/prometheus/client_golang/prometheus"

// Text generation and matching Prometheus metrics.
var (
	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talentmatch",
			Name:      "generation_requests_total",
			Help:      "Total number of text generation requests",
		},
		[]string{"provider", "model", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "talentmatch",
			Name:      "generation_request_duration_seconds",
			Help:      "Text generation request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	GenerationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talentmatch",
			Name:      "generation_errors_total",
			Help:      "Total text generation errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	MatchCompositionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "talentmatch",
			Name:      "match_compositions_total",
			Help:      "Match compositions by outcome",
		},
		[]string{"outcome"}, // "ok" / "degraded"
	)

	MatchCandidatesDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "talentmatch",
			Name:      "match_candidates_dropped_total",
			Help:      "Candidates dropped from match batches after composition failure",
		},
	)
)

var generationMetricsRegistered bool

// RegisterGenerationMetrics registers Prometheus generation and matching
// metrics. Must be called once from main.
func RegisterGenerationMetrics() {
	if generationMetricsRegistered {
		return
	}
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(GenerationErrorsTotal)
	prometheus.MustRegister(MatchCompositionsTotal)
	prometheus.MustRegister(MatchCandidatesDroppedTotal)
	generationMetricsRegistered = true
}
