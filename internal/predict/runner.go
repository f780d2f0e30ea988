// Package predict runs a batch of queries through the recommendation API
// and collects (query, url) prediction rows.
package predict

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Recommender returns recommended assessment URLs for a query.
type Recommender interface {
	RecommendURLs(ctx context.Context, query string) ([]string, error)
}

// Row is one prediction: a query paired with one recommended URL.
type Row struct {
	Query string
	URL   string
}

// QueryResult holds the outcome of a single query.
type QueryResult struct {
	Query string
	URLs  []string
	Err   error
}

// Summary is the outcome of a batch run.
type Summary struct {
	Results []QueryResult
	Failed  int
}

// Rows flattens results into prediction rows in input order.
// Failed queries contribute no rows.
func (s Summary) Rows() []Row {
	var rows []Row
	for _, r := range s.Results {
		if r.Err != nil {
			continue
		}
		for _, u := range r.URLs {
			rows = append(rows, Row{Query: r.Query, URL: u})
		}
	}
	return rows
}

// Runner fans queries out over a bounded worker pool.
type Runner struct {
	rec     Recommender
	workers int
	logger  *zap.Logger
}

// Option configures the Runner.
type Option func(*Runner)

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner.
func NewRunner(rec Recommender, opts ...Option) *Runner {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	r := &Runner{rec: rec, workers: workers, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every query. Individual query failures are recorded in the
// summary; only pool errors and context cancellation fail the run.
func (r *Runner) Run(ctx context.Context, queries []string) (Summary, error) {
	results := make([]QueryResult, len(queries))
	if len(queries) == 0 {
		return Summary{Results: results}, nil
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return Summary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i] = r.runOne(ctx, i, len(queries), q)
		})
		if submitErr != nil {
			wg.Done()
			results[i] = QueryResult{Query: q, Err: submitErr}
		}
	}
	wg.Wait()

	summary := Summary{Results: results}
	for _, res := range results {
		if res.Err != nil {
			summary.Failed++
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (r *Runner) runOne(ctx context.Context, i, total int, q string) QueryResult {
	log := r.logger.With(zap.Int("query_index", i+1), zap.Int("query_total", total))
	if err := ctx.Err(); err != nil {
		return QueryResult{Query: q, Err: err}
	}

	urls, err := r.rec.RecommendURLs(ctx, q)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Warn("query failed", zap.String("query", preview(q)), zap.Error(err))
		}
		return QueryResult{Query: q, Err: err}
	}

	log.Info("query processed", zap.String("query", preview(q)), zap.Int("recommendations", len(urls)))
	return QueryResult{Query: q, URLs: urls}
}

func preview(q string) string {
	const limit = 60
	runes := []rune(q)
	if len(runes) <= limit {
		return q
	}
	return string(runes[:limit]) + "..."
}
