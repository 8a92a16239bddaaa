package framegraph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the graph's collectors. A nil *metrics records nothing.
type metrics struct {
	queries       *prometheus.CounterVec
	pathHops      prometheus.Histogram
	pathCache     *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		// Labels: result (ok, identity, no_path, invalid_epoch, error)
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refframe",
			Name:      "queries_total",
			Help:      "Frame graph queries by outcome",
		}, []string{"result"}),

		pathHops: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "refframe",
			Name:      "path_hops",
			Help:      "Number of edges in resolved paths",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
		}),

		// Labels: outcome (hit, miss, shared)
		pathCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refframe",
			Name:      "path_cache_total",
			Help:      "Path cache lookups by outcome",
		}, []string{"outcome"}),

		// Labels: result (ok, rejected)
		registrations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refframe",
			Name:      "registrations_total",
			Help:      "Frame registrations by result",
		}, []string{"result"}),
	}
}

func (m *metrics) query(result string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(result).Inc()
}

func (m *metrics) hops(n int) {
	if m == nil {
		return
	}
	m.pathHops.Observe(float64(n))
}

func (m *metrics) cache(outcome string) {
	if m == nil {
		return
	}
	m.pathCache.WithLabelValues(outcome).Inc()
}

func (m *metrics) registration(result string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(result).Inc()
}
