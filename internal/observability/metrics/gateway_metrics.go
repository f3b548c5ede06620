package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeApproved = "approved"
	OutcomeDeclined = "declined"
	OutcomeError    = "error"
)

type Config struct {
	ServiceName string
	Environment string
}

type GatewayMetrics struct {
	operations       *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
	journalFailures  prometheus.Counter
}

func NewGatewayMetrics(registerer prometheus.Registerer, cfg Config) *GatewayMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "bambora-gateway"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "bambora_gateway_operations_total",
			Help:        "Gateway operations by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"operation", "outcome"}, // approved | declined | error
	)

	operationLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "bambora_gateway_operation_duration_seconds",
			Help:        "Latency of gateway operations including the processor round trip.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)

	journalFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "bambora_gateway_journal_failures_total",
			Help:        "Responses that could not be written to the journal.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(operations, operationLatency, journalFailures)

	return &GatewayMetrics{
		operations:       operations,
		operationLatency: operationLatency,
		journalFailures:  journalFailures,
	}
}

func (m *GatewayMetrics) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.operationLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *GatewayMetrics) IncJournalFailure() {
	if m == nil {
		return
	}
	m.journalFailures.Inc()
}
