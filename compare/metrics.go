package compare

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names as constants for consistency.
const (
	MetricOracleQueriesTotal = "askrank_oracle_queries_total"
	MetricCacheHitsTotal     = "askrank_cache_hits_total"
)

// Query kinds used as the "kind" label.
const (
	KindPreferred  = "preferred"
	KindEquivalent = "equivalent"
)

// Metrics contains Prometheus counters for oracle traffic.
// The collectors are not registered; call Register with a registry.
type Metrics struct {
	queries   *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricOracleQueriesTotal,
				Help: "Total number of questions put to the external oracle by kind",
			},
			[]string{"kind"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCacheHitsTotal,
				Help: "Total number of comparisons answered from the relation cache by kind",
			},
			[]string{"kind"},
		),
	}
}

// Register registers all collectors with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns all collectors for custom registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.queries, m.cacheHits}
}

func (m *Metrics) incQuery(kind string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(kind).Inc()
}

func (m *Metrics) incCacheHit(kind string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(kind).Inc()
}
