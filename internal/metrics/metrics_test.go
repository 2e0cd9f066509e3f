package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/domgiordano/sports-events/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{domain.ErrUnauthenticated, "unauthenticated"},
		{domain.NewValidationError("name", "Event name is required"), "validation"},
		{domain.ErrEventNotFound, "not_found"},
		{domain.NewStorageError("list events", errors.New("timeout")), "storage"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOperation("create", nil)
	m.ObserveOperation("create", nil)
	m.ObserveOperation("create", domain.ErrUnauthenticated)
	m.ObserveCompensation(true)
	m.ObserveCompensation(false)
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "unauthenticated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compensations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compensations.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}
