package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Epoch(t *testing.T) {
	m := &Metrics{prometheus: NewPrometheusMetrics()}

	m.Epoch("test", 3)
	m.Epoch("test", 0)
	m.Epoch("other", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Epochs.WithLabelValues("test")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.prometheus.Updates.WithLabelValues("test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Epochs.WithLabelValues("other")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Updates.WithLabelValues("other")))
}

func TestMetrics_Fit(t *testing.T) {
	m := &Metrics{prometheus: NewPrometheusMetrics()}

	for i := 0; i < 5; i++ {
		m.Fit("test")
	}
	assert.Equal(t, 5.0, testutil.ToFloat64(m.prometheus.Fits.WithLabelValues("test")))
}

func TestObserver_Registered(t *testing.T) {
	// registering again must collide with the collectors added at init
	for _, c := range Observer.Counters().Collectors() {
		err := prometheus.Register(c)
		require.Error(t, err)
		_, ok := err.(prometheus.AlreadyRegisteredError)
		assert.True(t, ok)
	}
}
