package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "hebb"

// Prometheus holds the training counters, labeled by model.
type Prometheus struct {
	Fits    *prometheus.CounterVec
	Epochs  *prometheus.CounterVec
	Updates *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "completed training runs",
			}, []string{"model"}),
		Epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "epochs_total",
				Help:      "completed passes over a training set",
			}, []string{"model"}),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_total",
				Help:      "samples that produced a non-zero weight update",
			}, []string{"model"}),
	}
}

// Collectors returns all the counters, e.g. for registration.
func (p Prometheus) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.Epochs, p.Updates}
}
