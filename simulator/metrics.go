package simulator

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK            = "ok"
	outcomeInjectedError = "injected_error"
)

// Metrics records what the simulator did to each call
type Metrics struct {
	Calls   *prometheus.CounterVec
	DelayMS *prometheus.HistogramVec
}

// NewMetrics creates the simulator metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "snackshop",
		Subsystem: "simulator",
		Name:      "calls_total",
		Help:      "Mock API calls that passed through the network simulator.",
	}, []string{"operation", "outcome"})
	delay := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "snackshop",
		Subsystem: "simulator",
		Name:      "delay_ms",
		Help:      "Artificial latency added to mock API calls in milliseconds.",
		Buckets:   []float64{350, 400, 450, 500, 550, 600, 650, 700, 750, 800},
	}, []string{"operation"})

	reg.MustRegister(calls, delay)
	return &Metrics{Calls: calls, DelayMS: delay}
}

func (m *Metrics) observeDelay(operation string, ms float64) {
	if m == nil {
		return
	}
	m.DelayMS.WithLabelValues(operation).Observe(ms)
}

func (m *Metrics) countCall(operation, outcome string) {
	if m == nil {
		return
	}
	m.Calls.WithLabelValues(operation, outcome).Inc()
}
