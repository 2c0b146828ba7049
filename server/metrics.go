package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gridpath"

// Metrics groups the service's prometheus collectors.
type Metrics struct {
	searches     *prometheus.CounterVec
	expansions   prometheus.Histogram
	pathCells    prometheus.Histogram
	httpDuration *prometheus.HistogramVec
	requests     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of searches by outcome",
		}, []string{"outcome"}),
		expansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expansions",
			Help:      "Cells finalized per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cells",
			Help:      "Cells on each returned path",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "The total number of requests",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.searches, m.expansions, m.pathCells, m.httpDuration, m.requests)
	return m
}

// Search outcomes.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
	outcomeInvalid  = "invalid"
)

func (m *Metrics) observeSearch(outcome string, expanded, pathLen int) {
	m.searches.WithLabelValues(outcome).Inc()
	m.expansions.Observe(float64(expanded))
	if pathLen > 0 {
		m.pathCells.Observe(float64(pathLen))
	}
}

// Middleware records duration and status per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
	})
}
