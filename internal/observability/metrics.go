// Package observability provides Prometheus metrics for the record store.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreErrors counts record store errors by backend and operation.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffhub_store_errors_total",
		Help: "Total number of record store errors by backend and operation",
	}, []string{"backend", "operation"})

	// StoreOpLatency records record store operation latency.
	StoreOpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staffhub_store_op_latency_seconds",
		Help:    "Record store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation"})
)

// ObserveStoreOp records the latency of a store operation. Use with defer:
//
//	defer observability.ObserveStoreOp("sqlite", "read_all", time.Now())
func ObserveStoreOp(backend, operation string, start time.Time) {
	StoreOpLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}
