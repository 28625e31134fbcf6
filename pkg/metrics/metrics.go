package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// ContributionCount counts accepted project backings
	ContributionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contribution_count",
			Help: "Total number of accepted contributions",
		},
		[]string{"status"}, // status: success, failed
	)

	// ReleaseCount counts milestone fund releases
	ReleaseCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milestone_release_count",
			Help: "Total number of milestone fund releases",
		},
		[]string{"status"},
	)

	// RefundCount counts backer refunds
	RefundCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refund_count",
			Help: "Total number of backer refunds",
		},
		[]string{"status"},
	)

	// LedgerTransferDuration tracks settlement-layer transfer latency
	LedgerTransferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_transfer_duration_seconds",
			Help:    "Escrow ledger transfer duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"direction", "status"}, // direction: deposit, payout
	)
)

// RecordHTTPRequest records the latency of a finished HTTP request
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// IncrementContribution bumps the contribution counter
func IncrementContribution(status string) {
	ContributionCount.WithLabelValues(status).Inc()
}

// IncrementRelease bumps the release counter
func IncrementRelease(status string) {
	ReleaseCount.WithLabelValues(status).Inc()
}

// IncrementRefund bumps the refund counter
func IncrementRefund(status string) {
	RefundCount.WithLabelValues(status).Inc()
}

// RecordLedgerTransfer records the latency of a ledger deposit or payout
func RecordLedgerTransfer(direction, status string, duration time.Duration) {
	LedgerTransferDuration.WithLabelValues(direction, status).Observe(duration.Seconds())
}
