// Package metrics wraps a private Prometheus registry with the collectors the
// API reports. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Measurement kinds.
const (
	KindOffset   = "offset"
	KindDistance = "distance"
	KindSurvey   = "survey"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	MeasurementsTotal   *prometheus.CounterVec
	ParseFailuresTotal  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_server_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	m.MeasurementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geodist_measurements_total",
		Help: "Number of point measurements computed, by request kind",
	}, []string{"kind"})

	m.ParseFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geodist_parse_failures_total",
		Help: "Number of coordinate strings rejected by the parser",
	})

	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration, m.MeasurementsTotal, m.ParseFailuresTotal)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, path string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(dur.Seconds())
}

func (m *Metrics) AddMeasurements(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.MeasurementsTotal.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) IncParseFailures() {
	if m == nil {
		return
	}
	m.ParseFailuresTotal.Inc()
}
