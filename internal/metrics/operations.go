// Package metrics collects runtime memory readings and Prometheus metrics
// about the arithmetic operations run by mpcalc.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "mpcalc"

// OperationMetrics records one observation per engine operation in a
// private registry.
type OperationMetrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	resultBits *prometheus.GaugeVec
	mismatches prometheus.Counter
}

// NewOperationMetrics creates the operation metrics and registers them,
// together with the Go runtime collector, in a new registry.
func NewOperationMetrics() *OperationMetrics {
	m := &OperationMetrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of operations run, by engine, operation and status.",
		}, []string{"engine", "op", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall-clock duration of successful operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"engine", "op"}),
		resultBits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_bits",
			Help:      "Bit length of the last result.",
		}, []string{"engine", "op"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_mismatches_total",
			Help:      "Number of comparisons in which engines disagreed.",
		}),
	}
	m.registry.MustRegister(m.operations, m.duration, m.resultBits, m.mismatches, collectors.NewGoCollector())
	return m
}

// Observe records the outcome of one operation.
func (m *OperationMetrics) Observe(engine, op string, d time.Duration, bits int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.operations.WithLabelValues(engine, op, status).Inc()
	if err == nil {
		m.duration.WithLabelValues(engine, op).Observe(d.Seconds())
		m.resultBits.WithLabelValues(engine, op).Set(float64(bits))
	}
}

// RecordMismatch counts a disagreement between engines.
func (m *OperationMetrics) RecordMismatch() {
	m.mismatches.Inc()
}

// Registry returns the registry holding the metrics.
func (m *OperationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes every metric to path in the Prometheus text
// format, for collection by the node exporter textfile collector.
func (m *OperationMetrics) WriteToTextfile(path string) error {
	if path == "" {
		return errors.New("metrics: empty textfile path")
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
