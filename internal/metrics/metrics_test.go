package metrics_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"marketplace/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_FleetObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.PingAccepted()
	m.PingAccepted()
	m.PingDropped("invalid")
	m.FrameDropped()
	m.SubscribersChanged(3)
	m.SubscribersChanged(2)
	m.PresenceChanged(4)

	expected := `
# HELP fleet_pings_total Location pings received, by outcome
# TYPE fleet_pings_total counter
fleet_pings_total{result="accepted"} 2
fleet_pings_total{result="invalid"} 1
# HELP fleet_subscribers Live map subscribers currently connected
# TYPE fleet_subscribers gauge
fleet_subscribers 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fleet_pings_total", "fleet_subscribers"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "fleet_frames_dropped_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "fleet_presence_changes_total"))
}

func TestMetrics_SetOrdersByStatus_ZeroFillsMissing(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.SetOrdersByStatus([]string{"pending", "assigned"}, map[string]int64{"pending": 4})

	expected := `
# HELP orders_by_status Orders currently in each lifecycle status
# TYPE orders_by_status gauge
orders_by_status{status="assigned"} 0
orders_by_status{status="pending"} 4
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "orders_by_status"))
}

func TestMetrics_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CheckoutFinished(metrics.ResultOK)
	m.CheckoutFinished(metrics.ResultRolledBack)
	m.SpinFinished(metrics.ResultEmpty)
	m.ObserveHTTP(http.MethodGet, "/api/v1/orders/:id", http.StatusNotFound, 20*time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "checkouts_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "prize_spins_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "http_request_duration_seconds"))
}

func TestMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}
