package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Recommendation outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidQuery = "invalid_query"
	OutcomeCatalogError = "catalog_error"
	OutcomeEmptyCatalog = "empty_catalog"
)

// Post-ranking adjustments.
const (
	AdjustmentRebalance = "rebalance"
	AdjustmentFloor     = "floor"
)

// Recommendation Prometheus metrics.
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_results",
			Help:      "Number of assessments returned per successful request",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	)

	RecommendAdjustmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_adjustments_total",
			Help:      "Post-ranking adjustments applied (domain rebalance, size floor)",
		},
		[]string{"kind"},
	)

	CatalogFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_fetch_duration_seconds",
			Help:      "Catalog fetch duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

var registerRecommendOnce sync.Once

// RegisterRecommendMetrics registers the recommendation metrics. Call from main.
func RegisterRecommendMetrics() {
	registerRecommendOnce.Do(func() {
		prometheus.MustRegister(RecommendRequestsTotal)
		prometheus.MustRegister(RecommendResults)
		prometheus.MustRegister(RecommendAdjustmentsTotal)
		prometheus.MustRegister(CatalogFetchDuration)
	})
}
