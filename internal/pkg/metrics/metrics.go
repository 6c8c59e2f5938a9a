package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported by the API
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	EmployeesTotal    prometheus.Gauge
	EmployeesByStatus *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg and serves them from Handler
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		EmployeesTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "employees_total",
			Help: "Total number of employees",
		}),

		EmployeesByStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "employees_by_status",
			Help: "Number of employees by status",
		}, []string{"status"}),

		gatherer: reg,
	}
}

// ObserveRequest records one served request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SetEmployeeStats publishes the latest headcount snapshot
func (m *Metrics) SetEmployeeStats(total int, byStatus map[string]int) {
	m.EmployeesTotal.Set(float64(total))
	m.EmployeesByStatus.Reset()
	for status, count := range byStatus {
		m.EmployeesByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
