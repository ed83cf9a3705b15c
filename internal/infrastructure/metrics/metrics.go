package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of a single CLI invocation.
// A command-line process has no scrape endpoint, so the registry is
// flushed to a node_exporter textfile instead.
type Metrics struct {
	registry *prometheus.Registry

	// Command metrics
	Operations      *prometheus.CounterVec
	OperationAmount *prometheus.CounterVec

	// Wallet metrics
	WalletBalance *prometheus.GaugeVec
	WalletsTotal  prometheus.Gauge
}

// New creates all metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		// Command metrics
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_operations_total",
				Help: "Wallet commands executed by operation and result",
			},
			[]string{"operation", "result"},
		),
		OperationAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_operation_amount_total",
				Help: "Sum of amounts successfully credited or debited",
			},
			[]string{"operation"},
		),

		// Wallet metrics
		WalletBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wallet_balance",
				Help: "Current wallet balance",
			},
			[]string{"wallet"},
		),
		WalletsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wallets_total",
			Help: "Number of wallets in the store",
		}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
