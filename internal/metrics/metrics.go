// Package metrics exposes Prometheus collectors for source operations and
// the outbound provider API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jiosaavn"

// Metrics holds the collectors. Each instance owns its registry so tests and
// multiple servers in one process do not collide.
type Metrics struct {
	registry *prometheus.Registry

	LoadResults      *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LoadResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "load_results_total",
				Help:      "Results returned by source operations, by operation and load type",
			},
			[]string{"operation", "load_type"},
		),
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Requests sent to the provider API, by status code",
			},
			[]string{"status"},
		),
		UpstreamDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Latency of provider API requests",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.LoadResults,
		m.UpstreamRequests,
		m.UpstreamDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveUpstream records one provider request. Transport failures are
// labelled "error" since they carry no status code.
func (m *Metrics) ObserveUpstream(statusCode int, err error, elapsed time.Duration) {
	status := "error"
	if err == nil {
		status = strconv.Itoa(statusCode)
	}
	m.UpstreamRequests.WithLabelValues(status).Inc()
	m.UpstreamDuration.Observe(elapsed.Seconds())
}

// ObserveLoad records the outcome of one source operation.
func (m *Metrics) ObserveLoad(operation, loadType string) {
	m.LoadResults.WithLabelValues(operation, loadType).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
