package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// metrics holds the Prometheus collectors for dispatched requests.
type metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	applicationErrors *prometheus.CounterVec
}

func newMetrics(registry prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of dispatched requests",
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request dispatch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		applicationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "application_errors_total",
			Help:      "Error responses produced by matched endpoints, by status",
		}, []string{"status"}),
	}
}

// observe records one finished request. route is "" when nothing matched.
func (m *metrics) observe(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = unmatchedRoute
	}

	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

	if route != unmatchedRoute && status >= 400 {
		m.applicationErrors.WithLabelValues(strconv.Itoa(status)).Inc()
	}
}
