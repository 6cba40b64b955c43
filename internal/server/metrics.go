package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/qdcalc/internal/accuracy"
)

// Metrics holds the Prometheus collectors of one server. Each instance owns
// its registry, so several servers can coexist in a process.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge
	evalDuration   prometheus.Histogram
	evalErrors     prometheus.Counter
	accuracyErr    *prometheus.GaugeVec
	nonCanonical   *prometheus.GaugeVec
	handler        http.Handler
}

// NewMetrics creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qdcalc_requests_total",
			Help: "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qdcalc_active_requests",
			Help: "HTTP requests currently being served.",
		}),
		evalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qdcalc_eval_duration_seconds",
			Help:    "Time spent evaluating expressions.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		evalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qdcalc_eval_errors_total",
			Help: "Expressions rejected by the evaluator.",
		}),
		accuracyErr: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "qdcalc_accuracy_error_eps",
			Help: "Relative error of the last accuracy study in units of eps.",
		}, []string{"variant", "stat"}),
		nonCanonical: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "qdcalc_accuracy_noncanonical",
			Help: "Non-canonical results of the last accuracy study.",
		}, []string{"variant"}),
	}
	m.registry.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.evalDuration,
		m.evalErrors,
		m.accuracyErr,
		m.nonCanonical,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return m
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// ObserveEval records the duration of one evaluation and whether it failed.
func (m *Metrics) ObserveEval(d time.Duration, failed bool) {
	m.evalDuration.Observe(d.Seconds())
	if failed {
		m.evalErrors.Inc()
	}
}

// RecordAccuracy publishes the per-variant errors of a study.
func (m *Metrics) RecordAccuracy(report *accuracy.Report) {
	for _, res := range report.Results {
		m.accuracyErr.WithLabelValues(res.Name, "mean").Set(res.MeanErr)
		m.accuracyErr.WithLabelValues(res.Name, "max").Set(res.MaxErr)
		m.nonCanonical.WithLabelValues(res.Name).Set(float64(res.NonCanonical))
	}
}

// WritePrometheus serves the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
