// Package metrics exposes prometheus counters for the recommendation engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kingdom"

// Recorder holds the engine's collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	aiCalls      *prometheus.CounterVec
	aiDuration   *prometheus.HistogramVec
	fallbacks    *prometheus.CounterVec
	trendFetches *prometheus.CounterVec
	trendSkipped *prometheus.CounterVec
	suggestions  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder backed by its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.aiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_calls_total",
			Help:      "Total calls to the text-generation collaborator",
		},
		[]string{"provider", "status"}, // "ok", "error"
	)
	r.aiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_call_duration_seconds",
			Help:      "Duration of text-generation calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"provider"},
	)
	r.fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Times an operation returned its documented fallback value",
		},
		[]string{"operation"},
	)
	r.trendFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_fetches_total",
			Help:      "Trend source fetches by outcome",
		},
		[]string{"platform", "status"},
	)
	r.trendSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_records_skipped_total",
			Help:      "Malformed trending topic records dropped before ranking",
		},
		[]string{"platform"},
	)
	r.suggestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_total",
			Help:      "Suggestions returned to callers",
		},
		[]string{"kind"}, // "hashtag", "idea", "optimization"
	)
	r.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	r.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	r.registry.MustRegister(
		r.aiCalls, r.aiDuration, r.fallbacks, r.trendFetches,
		r.trendSkipped, r.suggestions, r.httpRequests, r.httpDuration,
	)
	return r
}

// Registry returns the underlying registry, for tests and custom exposition.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// AICall records one text-generation call.
func (r *Recorder) AICall(provider string, ok bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.aiCalls.WithLabelValues(provider, status(ok)).Inc()
	r.aiDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// Fallback records that an operation degraded to its fallback value.
func (r *Recorder) Fallback(operation string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(operation).Inc()
}

// TrendFetch records a trend source call and how many records were dropped.
func (r *Recorder) TrendFetch(platform string, ok bool, skipped int) {
	if r == nil {
		return
	}
	r.trendFetches.WithLabelValues(platform, status(ok)).Inc()
	if skipped > 0 {
		r.trendSkipped.WithLabelValues(platform).Add(float64(skipped))
	}
}

// Suggestions records n suggestions of a kind.
func (r *Recorder) Suggestions(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.suggestions.WithLabelValues(kind).Add(float64(n))
}

// HTTPRequest records one served request.
func (r *Recorder) HTTPRequest(method, route string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, http.StatusText(code)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
