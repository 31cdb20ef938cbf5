// Package metrics registers the Prometheus instruments exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WalletTransactions counts applied wallet transactions by kind.
	WalletTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finflow_wallet_transactions_total",
		Help: "Number of wallet transactions applied, by kind.",
	}, []string{"kind"})

	// WalletRejections counts debits rejected for insufficient funds.
	WalletRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finflow_wallet_debits_rejected_total",
		Help: "Number of debits rejected because the balance could not cover them.",
	})

	// SettlementRuns counts completed split calculations.
	SettlementRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finflow_settlement_runs_total",
		Help: "Number of settlement plans computed.",
	})

	// HTTPRequests counts served requests.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finflow_http_requests_total",
		Help: "Number of HTTP requests served.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency per path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finflow_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)
