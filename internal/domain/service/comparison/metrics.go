package comparison

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "boatmatch"

type Metrics struct {
	comparisons  *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	rankDuration *prometheus.HistogramVec
}

// NewMetrics registers the service collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		comparisons: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "comparisons_total",
			Help:      "Pair comparisons computed by the scoring engine.",
		}, []string{"preset"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "comparison_cache_lookups_total",
			Help:      "Comparison cache lookups by result.",
		}, []string{"result"}),
		rankDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "ranking_duration_seconds",
			Help:      "Time spent ranking the catalog against one boat.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"preset"}),
	}
}

func (m *Metrics) comparisonComputed(preset string) {
	if m == nil {
		return
	}

	m.comparisons.WithLabelValues(preset).Inc()
}

func (m *Metrics) cacheLookup(hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}

	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) rankingObserved(preset string, seconds float64) {
	if m == nil {
		return
	}

	m.rankDuration.WithLabelValues(preset).Observe(seconds)
}
