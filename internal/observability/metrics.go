// Package observability holds the Prometheus instruments for the
// acquisition layer: cache lookups, gateway outcomes and upstream latency.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "airscope"

// Metrics holds the Prometheus counters and histograms for data acquisition.
type Metrics struct {
	CacheLookups     *prometheus.CounterVec   // labels: namespace, result={fresh,stale,miss}
	CacheWrites      *prometheus.CounterVec   // labels: namespace
	GatewayOutcomes  *prometheus.CounterVec   // labels: source={live,stale-cache,synthetic}
	UpstreamRequests *prometheus.CounterVec   // labels: provider, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: provider
	WarmupRuns       *prometheus.CounterVec   // labels: outcome={success,partial,failed}
}

// NewMetrics creates and registers all metrics with reg. A nil reg uses the
// default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := newMetrics()
	reg.MustRegister(
		m.CacheLookups,
		m.CacheWrites,
		m.GatewayOutcomes,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.WarmupRuns,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by namespace and result.",
		}, []string{"namespace", "result"}),
		CacheWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_writes_total",
			Help:      "Cache writes by namespace.",
		}, []string{"namespace"}),
		GatewayOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_readings_total",
			Help:      "Readings served by the gateway, by source.",
		}, []string{"source"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 10},
		}, []string{"provider"}),
		WarmupRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warmup_runs_total",
			Help:      "Cache warm-up runs by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveCacheLookup records a cache lookup. Safe on a nil receiver.
func (m *Metrics) ObserveCacheLookup(ns, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(ns, result).Inc()
}

// ObserveCacheWrite records a cache write. Safe on a nil receiver.
func (m *Metrics) ObserveCacheWrite(ns string) {
	if m == nil {
		return
	}
	m.CacheWrites.WithLabelValues(ns).Inc()
}

// ObserveGatewayOutcome records which source served a reading.
func (m *Metrics) ObserveGatewayOutcome(source string) {
	if m == nil {
		return
	}
	m.GatewayOutcomes.WithLabelValues(source).Inc()
}

// ObserveUpstream records one upstream request.
func (m *Metrics) ObserveUpstream(provider string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamRequests.WithLabelValues(provider, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveWarmup records the outcome of a warm-up run.
func (m *Metrics) ObserveWarmup(outcome string) {
	if m == nil {
		return
	}
	m.WarmupRuns.WithLabelValues(outcome).Inc()
}
