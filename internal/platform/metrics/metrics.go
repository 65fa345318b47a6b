package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service. Collectors are
// registered on a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	Calculations   *prometheus.CounterVec
	DirectorEvents *prometheus.CounterVec
	RateLimited    prometheus.Counter
}

// New creates a registry and registers all collectors on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pcs_http_requests_total",
			Help: "HTTP requests by route pattern, method and status code",
		}, []string{"route", "method", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pcs_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),

		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pcs_calculations_total",
			Help: "Calculator invocations by engine and outcome label",
		}, []string{"engine", "outcome"}), // engine: compliance, governance, client_risk, regional

		DirectorEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pcs_director_events_total",
			Help: "Director registry changes by event",
		}, []string{"event"}),

		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "pcs_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
}

// IncrementCalculation records a calculator result.
func (m *Metrics) IncrementCalculation(engine, outcome string) {
	if m != nil {
		m.Calculations.WithLabelValues(engine, outcome).Inc()
	}
}

// IncrementDirectorEvent records a director registry change.
func (m *Metrics) IncrementDirectorEvent(event string) {
	if m != nil {
		m.DirectorEvents.WithLabelValues(event).Inc()
	}
}

// IncrementRateLimited records a rejected request.
func (m *Metrics) IncrementRateLimited() {
	if m != nil {
		m.RateLimited.Inc()
	}
}
