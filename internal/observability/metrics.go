package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_ampm_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks record cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ampm_cache_hits_total",
			Help: "Number of record cache lookups by result",
		},
		[]string{"operation"},
	)

	// StoreOperations tracks record store reads and writes
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ampm_store_operations_total",
			Help: "Number of record store operations",
		},
		[]string{"backend", "operation", "status"},
	)

	// LedgerMutations tracks member, payment, expense and user changes
	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ampm_ledger_mutations_total",
			Help: "Number of ledger mutations",
		},
		[]string{"operation", "status"},
	)

	// DeleteGateRejections tracks deletions refused by the password gate
	DeleteGateRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ampm_delete_gate_rejections_total",
			Help: "Number of deletions rejected by role or password checks",
		},
		[]string{"resource"},
	)

	// LoginAttempts tracks login outcomes
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_ampm_login_attempts_total",
			Help: "Number of login attempts",
		},
		[]string{"status"},
	)

	// AuditEventsDropped tracks audit entries lost because the queue was full
	AuditEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_ampm_audit_events_dropped_total",
			Help: "Number of audit events dropped",
		},
	)

	// ActiveConnections tracks in-flight requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_ampm_active_connections",
			Help: "Number of active connections",
		},
	)
)
