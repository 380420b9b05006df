package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	fallbacksTotal   *prometheus.CounterVec
	analysesTotal    *prometheus.CounterVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_upstream_requests_total",
				Help: "Total number of upstream API requests by outcome",
			},
			[]string{"provider", "outcome"},
		),
		fallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_fallbacks_total",
				Help: "Total number of safe-fallback responses served",
			},
			[]string{"feature"},
		),
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_analyses_total",
				Help: "Total number of market analyses generated",
			},
			[]string{"analysis_type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordUpstreamRequest records an upstream call by provider and outcome.
func (r *Recorder) RecordUpstreamRequest(provider, outcome string) {
	r.upstreamRequests.WithLabelValues(provider, outcome).Inc()
}

// RecordFallback records a safe-fallback response for a feature.
func (r *Recorder) RecordFallback(feature string) {
	r.fallbacksTotal.WithLabelValues(feature).Inc()
}

// RecordAnalysis records a generated market analysis.
func (r *Recorder) RecordAnalysis(analysisType string) {
	r.analysesTotal.WithLabelValues(analysisType).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
