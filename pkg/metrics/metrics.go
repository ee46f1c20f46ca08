// Package metrics exposes Prometheus metrics for the catalog server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the registry and the instruments used by the HTTP layer.
type Metrics struct {
	Registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	catalogRecords  prometheus.Gauge
}

// New creates a Metrics with its own registry. When defaultCollectors is
// true the standard Go runtime and process collectors are registered too.
func New(defaultCollectors bool) *Metrics {
	registry := prometheus.NewRegistry()

	if defaultCollectors {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "herodex_requests_total",
				Help: "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "herodex_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		catalogRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "herodex_catalog_records",
				Help: "Number of records in the loaded catalog.",
			},
		),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.catalogRecords)
	return m
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetCatalogSize records the size of the loaded collection.
func (m *Metrics) SetCatalogSize(n int) {
	m.catalogRecords.Set(float64(n))
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
