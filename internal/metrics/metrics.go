package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sports_events"

type Metrics struct {
	operations    *prometheus.CounterVec
	compensations *prometheus.CounterVec
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		operations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Event operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		compensations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compensations_total",
				Help:      "Compensating deletes issued after a failed venue insert",
			},
			[]string{"result"},
		),
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) ObserveOperation(operation string, err error) {
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func (m *Metrics) ObserveCompensation(ok bool) {
	result := "failed"
	if ok {
		result = "ok"
	}
	m.compensations.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Outcome classifies err into the error taxonomy.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrEventNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	default:
		return "error"
	}
}
