package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	SignupAttempts   prometheus.Counter
	SignupConflicts  prometheus.Counter
	SendSuccesses    prometheus.Counter
	SendFailures     prometheus.Counter
	ProcessingTime   prometheus.Histogram
	TotalSubscribers prometheus.Gauge
	SentBrochures    prometheus.Gauge
	PendingBrochures prometheus.Gauge
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		SignupAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digital_reception_signup_attempts",
			Help: "Total number of newsletter signup attempts",
		}),
		SignupConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digital_reception_signup_conflicts",
			Help: "Total number of duplicate signup attempts",
		}),
		SendSuccesses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digital_reception_brochure_send_successes",
			Help: "Total number of brochure emails accepted by the provider",
		}),
		SendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "digital_reception_brochure_send_failures",
			Help: "Total number of brochure emails the provider rejected",
		}),
		ProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "digital_reception_signup_duration_seconds",
			Help:    "Time spent processing signup requests",
			Buckets: prometheus.DefBuckets,
		}),
		TotalSubscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "digital_reception_subscribers_total",
			Help: "Number of subscriber records",
		}),
		SentBrochures: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "digital_reception_brochures_sent",
			Help: "Number of subscribers whose brochure was sent",
		}),
		PendingBrochures: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "digital_reception_brochures_pending",
			Help: "Number of subscribers still awaiting their brochure",
		}),
	}
}
