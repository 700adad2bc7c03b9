package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const reasonNone = "none"

// Metrics records data provider outcomes and upstream latency on a private
// registry. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	registry         *prometheus.Registry
	providerResults  *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

func NewMetrics(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}
	m := &Metrics{
		registry: registry,
		providerResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "football_provider_results_total",
			Help:        "Data provider results by operation, source and fallback reason.",
			ConstLabels: constLabels,
		}, []string{"operation", "source", "reason"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "football_upstream_request_duration_seconds",
			Help:        "Latency of football-data.org requests by endpoint and outcome.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint", "outcome"}),
	}
	registry.MustRegister(m.providerResults, m.upstreamDuration)

	return m
}

func (m *Metrics) RecordProviderResult(operation, source, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = reasonNone
	}
	m.providerResults.WithLabelValues(operation, source, reason).Inc()
}

func (m *Metrics) ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(endpoint, outcome).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
