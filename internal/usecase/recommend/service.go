package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
	"github.com/kailas-cloud/assessrec/internal/domain/query"
	"github.com/kailas-cloud/assessrec/internal/domain/scoring"
	logpkg "github.com/kailas-cloud/assessrec/internal/logger"
	"github.com/kailas-cloud/assessrec/internal/metrics"
)

// Result is the outcome of one recommendation request.
type Result struct {
	Recommendations []assessment.Projection
	CatalogSize     int
	Rebalanced      bool
	FloorApplied    bool
}

// Service scores the catalog against a query and selects recommendations.
type Service struct {
	catalog CatalogSource
}

// New creates a recommendation service.
func New(catalog CatalogSource) *Service {
	return &Service{catalog: catalog}
}

// Recommend returns at most ten assessments for the raw query.
// An empty query fails with domain.ErrEmptyQuery before the catalog is read;
// a catalog failure is wrapped with domain.ErrCatalogUnavailable.
func (s *Service) Recommend(ctx context.Context, raw string) (Result, error) {
	q, err := query.Parse(raw)
	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeInvalidQuery).Inc()
		return Result{}, err
	}

	log := logpkg.FromContext(ctx)

	start := time.Now()
	records, err := s.catalog.FetchAll(ctx)
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeCatalogError).Inc()
		return Result{}, fmt.Errorf("fetch catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	if len(records) == 0 {
		metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeEmptyCatalog).Inc()
		return Result{Recommendations: []assessment.Projection{}}, nil
	}

	scored := make([]Scored, len(records))
	for i, rec := range records {
		a := assessment.FromRecord(rec)
		scored[i] = Scored{Assessment: a, Score: scoring.Score(&a, q)}
	}

	candidates, top := rank(scored)
	final, rebalanced := rebalance(q, top)
	final, floored := applyFloor(final, candidates)

	log.Debug("recommendation computed",
		zap.Int("catalog_size", len(records)),
		zap.Int("tokens", len(q.Tokens())),
		zap.Int("positive", len(top)),
		zap.Bool("rebalanced", rebalanced),
		zap.Bool("floor_applied", floored),
		zap.Int("returned", len(final)),
	)

	if rebalanced {
		metrics.RecommendAdjustmentsTotal.WithLabelValues(metrics.AdjustmentRebalance).Inc()
	}
	if floored {
		metrics.RecommendAdjustmentsTotal.WithLabelValues(metrics.AdjustmentFloor).Inc()
	}
	metrics.RecommendRequestsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.RecommendResults.Observe(float64(len(final)))

	out := make([]assessment.Projection, len(final))
	for i := range final {
		out[i] = assessment.Project(final[i].Assessment)
	}

	return Result{
		Recommendations: out,
		CatalogSize:     len(records),
		Rebalanced:      rebalanced,
		FloorApplied:    floored,
	}, nil
}
