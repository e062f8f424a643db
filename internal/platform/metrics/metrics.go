// Package metrics exposes prometheus instrumentation for the lessons HTTP
// surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the prometheus registry with the HTTP request collectors.
type Registry struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRegistry builds a private registry with the request collectors
// registered. A private registry keeps test processes from fighting over the
// global default registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lessons_http_requests_total",
				Help: "Total HTTP requests handled, by lesson module, method, and status.",
			},
			[]string{"module", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lessons_http_request_duration_seconds",
				Help:    "HTTP request handling duration in seconds, by lesson module.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"module"},
		),
	}
	r.registry.MustRegister(r.requestsTotal, r.requestDuration)
	return r
}

// Handler serves the scrape endpoint for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled request.
func (r *Registry) ObserveRequest(module, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(module, method, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(module).Observe(elapsed.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Instrument wraps next so every request is observed under the module label.
func (r *Registry) Instrument(module string, next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)
		r.ObserveRequest(module, req.Method, recorder.status, time.Since(start))
	})
}
