package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal entry metrics
	EntriesCreated prometheus.Counter
	EntriesPosted  prometheus.Counter
	EntriesDeleted prometheus.Counter
	PostingErrors  *prometheus.CounterVec
	PostedAmount   prometheus.Histogram
	PostDuration   prometheus.Histogram

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountOperations *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_entries_created_total",
			Help: "Total number of journal entries created",
		}),
		EntriesPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_entries_posted_total",
			Help: "Total number of journal entries posted",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_entries_deleted_total",
			Help: "Total number of draft journal entries deleted",
		}),
		PostingErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_posting_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),
		PostedAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_posted_amount",
			Help:    "Posted entry total amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		PostDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerbook_post_duration_seconds",
			Help:    "Duration of posting operations",
			Buckets: prometheus.DefBuckets,
		}),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerbook_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerbook_http_request_duration_seconds",
				Help:    "HTTP request duration by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerbook_rate_limit_hits_total",
				Help: "Total number of rate limited requests by path",
			},
			[]string{"path"},
		),
	}
}
