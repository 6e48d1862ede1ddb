// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec

	PatternSelected *prometheus.CounterVec
	FramesEmitted   *prometheus.CounterVec

	PlannerCacheHits   prometheus.Counter
	PlannerCacheMisses prometheus.Counter
	PlannerRetries     prometheus.Counter
	PlannerFallbacks   prometheus.Counter
)

// Init registers the core metrics collectors. Safe to call once at startup.
func Init() {
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatstream",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed, labeled by method and route.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chatstream",
		Name:      "http_request_duration_seconds",
		Help:      "Histogram of request durations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	PatternSelected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatstream",
		Name:      "dispatch_pattern_selected_total",
		Help:      "Count of requests classified into each dispatcher pattern.",
	}, []string{"pattern"})

	FramesEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chatstream",
		Name:      "frames_emitted_total",
		Help:      "Count of component envelopes written to response streams, labeled by kind.",
	}, []string{"kind"})

	PlannerCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chatstream",
		Subsystem: "planner",
		Name:      "cache_hits_total",
		Help:      "LLM planner cache hits.",
	})
	PlannerCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chatstream",
		Subsystem: "planner",
		Name:      "cache_misses_total",
		Help:      "LLM planner cache misses.",
	})
	PlannerRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chatstream",
		Subsystem: "planner",
		Name:      "retries_total",
		Help:      "LLM planner remote-call retries.",
	})
	PlannerFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "chatstream",
		Subsystem: "planner",
		Name:      "fallbacks_total",
		Help:      "LLM planner fallback-plan emissions.",
	})

	prometheus.MustRegister(
		HTTPRequestsTotal, HTTPDuration,
		PatternSelected, FramesEmitted,
		PlannerCacheHits, PlannerCacheMisses, PlannerRetries, PlannerFallbacks,
	)
}
