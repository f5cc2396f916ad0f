package notify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for notification dispatch monitoring.
var (
	notificationDispatchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_dispatched_total",
			Help: "Total number of notification dispatch attempts",
		},
	)

	notificationSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_sent_total",
			Help: "Total number of notification dispatch results",
		},
		[]string{"status"}, // success|channel_not_found|permission_denied|timeout|error
	)

	notificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_duration_seconds",
			Help:    "Notification dispatch duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
)

// recordDispatch records a dispatch attempt.
func recordDispatch() {
	notificationDispatchedTotal.Inc()
}

// recordResult records the outcome and duration of a dispatch attempt.
func recordResult(status string, duration time.Duration) {
	notificationSentTotal.WithLabelValues(status).Inc()
	notificationDuration.Observe(duration.Seconds())
}
