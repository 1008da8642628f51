package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/horae/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	appMetrics := metrics.NewMetrics(reg)

	appMetrics.EmployeesCreated.Inc()
	appMetrics.AttendanceMarked.WithLabelValues("updated").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.EmployeesCreated), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(appMetrics.AttendanceMarked.WithLabelValues("created")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.AttendanceMarked.WithLabelValues("updated")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}
