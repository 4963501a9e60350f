package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the process wide metrics sink, registered with the default prometheus registry.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Collectors()...)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Fit records a completed training run for the given model.
func (m *Metrics) Fit(model string) {
	m.prometheus.Fits.WithLabelValues(model).Inc()
}

// Epoch records a completed epoch and the number of non-zero updates it applied.
func (m *Metrics) Epoch(model string, updates int) {
	m.prometheus.Epochs.WithLabelValues(model).Inc()
	m.prometheus.Updates.WithLabelValues(model).Add(float64(updates))
}

// Counters exposes the underlying counters.
func (m *Metrics) Counters() Prometheus {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.prometheus
}
