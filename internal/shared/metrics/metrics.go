package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	generationStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kiosk_generation_started_total",
		Help: "Total certificate generations started.",
	})
	generationCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kiosk_generation_completed_total",
		Help: "Total certificate generations completed.",
	})
	generationFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kiosk_generation_failed_total",
		Help: "Total certificate generations failed.",
	})
	badgeOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_badge_outcome_total",
		Help: "Badge issuance outcomes by status.",
	}, []string{"status"})
	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kiosk_generation_duration_seconds",
		Help:    "Certificate generation duration in seconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})
)

// IncGenerationStarted increments the started counter.
func IncGenerationStarted() {
	generationStartedTotal.Inc()
}

// IncGenerationCompleted increments the completed counter.
func IncGenerationCompleted() {
	generationCompletedTotal.Inc()
}

// IncGenerationFailed increments the failed counter.
func IncGenerationFailed() {
	generationFailedTotal.Inc()
}

// IncBadgeOutcome counts one badge issuance outcome.
func IncBadgeOutcome(status string) {
	badgeOutcomeTotal.WithLabelValues(status).Inc()
}

// ObserveGenerationDuration records one generation duration.
func ObserveGenerationDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	generationDuration.Observe(seconds)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
