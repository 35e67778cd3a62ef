// Package metrics holds the Prometheus collectors of the marketplace service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Checkout and spin outcomes.
const (
	ResultOK         = "ok"
	ResultRejected   = "rejected"
	ResultRolledBack = "rolled_back"
	ResultEmpty      = "empty"
	ResultFailed     = "failed"
)

const pingAccepted = "accepted"

// Metrics owns every collector. It satisfies fleet.Observer.
type Metrics struct {
	pings           *prometheus.CounterVec
	framesDropped   prometheus.Counter
	subscribers     prometheus.Gauge
	ordersByStatus  *prometheus.GaugeVec
	checkouts       *prometheus.CounterVec
	spins           *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	presenceChanges prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleet_pings_total",
			Help: "Location pings received, by outcome",
		}, []string{"result"}),
		framesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_frames_dropped_total",
			Help: "Live frames dropped because a subscriber's buffer was full",
		}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleet_subscribers",
			Help: "Live map subscribers currently connected",
		}),
		presenceChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_presence_changes_total",
			Help: "Couriers flipping between online and offline on a presence sweep",
		}),
		ordersByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "orders_by_status",
			Help: "Orders currently in each lifecycle status",
		}, []string{"status"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Checkout attempts, by outcome",
		}, []string{"result"}),
		spins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prize_spins_total",
			Help: "Prize spins, by outcome",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(
		m.pings, m.framesDropped, m.subscribers, m.presenceChanges,
		m.ordersByStatus, m.checkouts, m.spins,
		m.httpRequests, m.httpDuration,
	)
	return m
}

func (m *Metrics) PingAccepted() {
	m.pings.WithLabelValues(pingAccepted).Inc()
}

func (m *Metrics) PingDropped(reason string) {
	m.pings.WithLabelValues(reason).Inc()
}

func (m *Metrics) FrameDropped() {
	m.framesDropped.Inc()
}

func (m *Metrics) SubscribersChanged(n int) {
	m.subscribers.Set(float64(n))
}

func (m *Metrics) PresenceChanged(n int) {
	m.presenceChanges.Add(float64(n))
}

// SetOrdersByStatus replaces the backlog gauge. Statuses missing from counts
// are reported as zero.
func (m *Metrics) SetOrdersByStatus(statuses []string, counts map[string]int64) {
	for _, s := range statuses {
		m.ordersByStatus.WithLabelValues(s).Set(float64(counts[s]))
	}
}

func (m *Metrics) CheckoutFinished(result string) {
	m.checkouts.WithLabelValues(result).Inc()
}

func (m *Metrics) SpinFinished(result string) {
	m.spins.WithLabelValues(result).Inc()
}

// ObserveHTTP records one served request. path must be the route pattern, not
// the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}
