package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	IndexDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "litmatch",
			Name:      "index_documents",
			Help:      "Number of papers in the current index",
		},
	)

	IndexTerms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "litmatch",
			Name:      "index_terms",
			Help:      "Vocabulary size of the current index",
		},
	)

	IndexBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "litmatch",
			Name:      "index_build_duration_seconds",
			Help:      "Index build duration in seconds, corpus load included",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	IndexBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "litmatch",
			Name:      "index_builds_total",
			Help:      "Total number of index build attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)

	RecommendCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "litmatch",
			Name:      "recommendation_cache_total",
			Help:      "Recommendation response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called
// once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(IndexDocuments)
	prometheus.MustRegister(IndexTerms)
	prometheus.MustRegister(IndexBuildDuration)
	prometheus.MustRegister(IndexBuildsTotal)
	prometheus.MustRegister(RecommendCacheTotal)
	engineMetricsRegistered = true
}
