package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TraceRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navtrace_trace_requests_total",
		Help: "Total number of route traces computed, by transport profile",
	}, []string{"profile"})
	TraceFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navtrace_trace_failures_total",
		Help: "Total number of route traces rejected or failed, by transport profile",
	}, []string{"profile"})
	UnreachableTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "navtrace_unreachable_total",
		Help: "Total number of reconstructions that ended in an unreachable target",
	})
	TraceDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "navtrace_trace_duration_ms",
		Help:    "Graph build + dijkstra trace + reconstruction duration in milliseconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000},
	})
	TraceNodes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "navtrace_trace_nodes",
		Help:    "Number of polyline nodes per trace",
		Buckets: prometheus.ExponentialBuckets(2, 2, 12),
	})
	StepSessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "navtrace_step_sessions_active",
		Help: "Open websocket step navigation sessions",
	})
)

func init() {
	prometheus.MustRegister(TraceRequestsTotal)
	prometheus.MustRegister(TraceFailuresTotal)
	prometheus.MustRegister(UnreachableTotal)
	prometheus.MustRegister(TraceDurationMs)
	prometheus.MustRegister(TraceNodes)
	prometheus.MustRegister(StepSessionsActive)
}

// ObserveTrace records one finished trace.
func ObserveTrace(profile string, numNodes int, took time.Duration, reachable bool) {
	TraceRequestsTotal.WithLabelValues(profile).Inc()
	TraceDurationMs.Observe(float64(took.Microseconds()) / 1000.0)
	TraceNodes.Observe(float64(numNodes))
	if !reachable {
		UnreachableTotal.Inc()
	}
}

func ObserveFailure(profile string) {
	TraceFailuresTotal.WithLabelValues(profile).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
