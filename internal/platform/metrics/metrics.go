// Package metrics owns the Prometheus registry for upstream, cache and fallback counters.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeSchema    = "schema_error"
	OutcomeRejected  = "circuit_open"
	OutcomeCanceled  = "canceled"
)

// Registry is nil-safe: every method on a nil *Registry is a no-op.
type Registry struct {
	reg *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	fallbacks        *prometheus.CounterVec
	circuitState     prometheus.Gauge
	warmRuns         *prometheus.CounterVec
}

func New(namespace string) *Registry {
	if namespace == "" {
		namespace = "driveahead"
	}

	r := &Registry{
		reg: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound requests to the motorsport API by resource kind and outcome",
		}, []string{"resource", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of outbound requests to the motorsport API",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Bucketed cache lookups by result",
		}, []string{"result"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_responses_total",
			Help:      "Responses served from the static fallback dataset",
		}, []string{"dataset"}),
		circuitState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_circuit_open",
			Help:      "1 while the upstream circuit breaker is open or half open",
		}),
		warmRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_warm_runs_total",
			Help:      "Cache warm runs by result",
		}, []string{"result"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.upstreamRequests,
		r.upstreamLatency,
		r.cacheLookups,
		r.fallbacks,
		r.circuitState,
		r.warmRuns,
	)
	return r
}

func (r *Registry) ObserveUpstream(resource, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(resource, outcome).Inc()
	if outcome != OutcomeRejected {
		r.upstreamLatency.WithLabelValues(resource).Observe(d.Seconds())
	}
}

func (r *Registry) ObserveCacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *Registry) ObserveFallback(dataset string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(dataset).Inc()
}

func (r *Registry) SetCircuitOpen(open bool) {
	if r == nil {
		return
	}
	if open {
		r.circuitState.Set(1)
		return
	}
	r.circuitState.Set(0)
}

func (r *Registry) ObserveWarm(failed int) {
	if r == nil {
		return
	}
	if failed > 0 {
		r.warmRuns.WithLabelValues("partial").Inc()
		return
	}
	r.warmRuns.WithLabelValues("ok").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}
