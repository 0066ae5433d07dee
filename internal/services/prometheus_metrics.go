package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal   *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	aggregationNodes    *prometheus.HistogramVec
	cyclesDetected      prometheus.Counter
	transactionWrites   *prometheus.CounterVec
	parentRejections    *prometheus.CounterVec
	transactionsByType  *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors on reg, prometheus.DefaultRegisterer in production
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		aggregationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subtree_aggregations_total",
				Help: "Total number of subtree sum computations",
			},
			[]string{"strategy", "status"},
		),
		aggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "subtree_aggregation_duration_milliseconds",
				Help:    "Subtree sum computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		aggregationNodes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "subtree_aggregation_nodes_visited",
				Help:    "Number of transactions visited per subtree sum",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		cyclesDetected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_tree_cycles_detected_total",
				Help: "Total number of already-visited transactions met during traversal",
			},
		),
		transactionWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_writes_total",
				Help: "Total number of transaction writes",
			},
			[]string{"operation", "type"},
		),
		parentRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_parent_rejections_total",
				Help: "Total number of rejected parent references",
			},
			[]string{"reason"},
		),
		transactionsByType: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "transactions_by_type",
				Help: "Number of live transactions of a type at the last type listing",
			},
			[]string{"type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	strategy := tags["strategy"]

	switch name {
	case "aggregation.completed":
		m.aggregationsTotal.WithLabelValues(strategy, "success").Inc()
	case "aggregation.failed":
		m.aggregationsTotal.WithLabelValues(strategy, "failed").Inc()
	case "aggregation.cycle_detected":
		m.cyclesDetected.Inc()
	case "transaction.created", "transaction.updated", "transaction.deleted":
		m.transactionWrites.WithLabelValues(name[len("transaction."):], tags["type"]).Inc()
	case "transaction.parent_rejected":
		if reason := tags["reason"]; reason != "" {
			m.parentRejections.WithLabelValues(reason).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "aggregation.walk", "aggregation.closure":
		m.aggregationDuration.WithLabelValues(name[len("aggregation."):]).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "aggregation.nodes_visited":
		m.aggregationNodes.WithLabelValues(tags["strategy"]).Observe(value)
	case "transactions.by_type":
		if transactionType := tags["type"]; transactionType != "" {
			m.transactionsByType.WithLabelValues(transactionType).Set(value)
		}
	}
}
