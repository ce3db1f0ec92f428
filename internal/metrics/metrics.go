// Package metrics collects Prometheus metrics for a traindesk session.
//
// Counters cover the request lifecycle (submitted, approved, rejected) and
// store failures; gauges track ledger size. The /metrics HTTP endpoint is
// opt-in via configuration and off by default, so a plain interactive run
// never opens a socket.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the session metrics.
type Collector struct {
	sessions          *prometheus.CounterVec
	requestsSubmitted prometheus.Counter
	requestsApproved  prometheus.Counter
	requestsRejected  prometheus.Counter
	storeLoadErrors   prometheus.Counter
	ledgerWriteErrors prometheus.Counter
	ledgerRequests    prometheus.Gauge
	requestsPending   prometheus.Gauge
}

// NewCollector creates and registers the session metrics on the default
// registry.
func NewCollector() *Collector {
	c := &Collector{
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "traindesk_sessions_total",
			Help: "Total number of authenticated sessions, by role",
		}, []string{"role"}),
		requestsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traindesk_requests_submitted_total",
			Help: "Total number of course requests appended to the ledger",
		}),
		requestsApproved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traindesk_requests_approved_total",
			Help: "Total number of course requests approved in review",
		}),
		requestsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traindesk_requests_rejected_total",
			Help: "Total number of course requests rejected in review",
		}),
		storeLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traindesk_store_load_errors_total",
			Help: "Total number of record stores that failed to load",
		}),
		ledgerWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "traindesk_ledger_write_errors_total",
			Help: "Total number of failed ledger appends or rewrites",
		}),
		ledgerRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "traindesk_ledger_requests",
			Help: "Number of course requests in the loaded ledger",
		}),
		requestsPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "traindesk_requests_pending",
			Help: "Number of pending course requests in the loaded ledger",
		}),
	}

	prometheus.MustRegister(c.sessions)
	prometheus.MustRegister(c.requestsSubmitted)
	prometheus.MustRegister(c.requestsApproved)
	prometheus.MustRegister(c.requestsRejected)
	prometheus.MustRegister(c.storeLoadErrors)
	prometheus.MustRegister(c.ledgerWriteErrors)
	prometheus.MustRegister(c.ledgerRequests)
	prometheus.MustRegister(c.requestsPending)

	return c
}

// RecordSession counts an authenticated session for the given role.
func (c *Collector) RecordSession(role string) {
	c.sessions.WithLabelValues(role).Inc()
}

// RecordSubmitted counts a course request appended to the ledger.
func (c *Collector) RecordSubmitted() {
	c.requestsSubmitted.Inc()
}

// RecordApproved counts an approval decision.
func (c *Collector) RecordApproved() {
	c.requestsApproved.Inc()
}

// RecordRejected counts a rejection decision.
func (c *Collector) RecordRejected() {
	c.requestsRejected.Inc()
}

// RecordStoreLoadError counts a record store that failed to load.
func (c *Collector) RecordStoreLoadError() {
	c.storeLoadErrors.Inc()
}

// RecordLedgerWriteError counts a failed ledger append or rewrite.
func (c *Collector) RecordLedgerWriteError() {
	c.ledgerWriteErrors.Inc()
}

// UpdateLedgerStats sets the ledger size gauges.
func (c *Collector) UpdateLedgerStats(total, pending int) {
	c.ledgerRequests.Set(float64(total))
	c.requestsPending.Set(float64(pending))
}

// StartServer exposes /metrics on the given port. Blocks; callers run it in
// a goroutine when metrics are enabled.
func StartServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
