package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// status label values
const (
	StatusSuccess     = "success"
	StatusServerError = "server_error"
	StatusTransport   = "transport_error"
	StatusFailure     = "failure"
)

var (
	// rpc latency including retries - histogram to track p50/p90/p99
	// a call that retried for a minute counts as a minute here
	// labels: method (Lock, TryLock, Unlock, Renew)
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ldlm_client_rpc_duration_seconds",
			Help:    "time taken by a logical rpc including retries",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~32s
		},
		[]string{"method"},
	)

	// rpc outcome counter
	// labels: method, status (success/server_error/transport_error)
	RPCTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldlm_client_rpc_total",
			Help: "total number of logical rpcs by outcome",
		},
		[]string{"method", "status"},
	)

	// retry counter - one per transport failure that was retried
	// a steady non-zero rate means the server is flapping
	RPCRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldlm_client_rpc_retries_total",
			Help: "total number of rpc retries after a transport failure",
		},
		[]string{"method"},
	)

	// lock acquisition counter - acquired vs not acquired
	// not acquired covers wait timeouts and busy try-locks
	// labels: method (Lock/TryLock), status (acquired/not_acquired)
	LockAcquireTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldlm_client_lock_acquire_total",
			Help: "total number of lock acquisition attempts",
		},
		[]string{"method", "status"},
	)

	// currently held locks - gauge shows locks acquired through this process
	// useful for detecting lock leaks in callers that forget to unlock
	LocksHeld = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ldlm_client_locks_held",
			Help: "current number of locks held by this process",
		},
	)

	// how long locks were held, measured from acquire to unlock
	LockHeldDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ldlm_client_lock_held_duration_seconds",
			Help:    "time between acquiring and unlocking a lock",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10), // 10ms to ~43m
		},
	)

	// refresh counter - tracks keepalive success/failure
	// a failure ends the keepalive for that lock, alert on it
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ldlm_client_refresh_total",
			Help: "total number of automatic lock refreshes",
		},
		[]string{"status"},
	)

	// active refresh timers - one per auto-refreshed lock
	RefreshTimersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ldlm_client_refresh_timers_active",
			Help: "current number of running refresh timers",
		},
	)
)
