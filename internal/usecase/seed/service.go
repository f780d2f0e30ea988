// Package seed loads catalog records into a writable catalog store.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
	logpkg "github.com/kailas-cloud/assessrec/internal/logger"
)

// RecordError describes a record that could not be stored.
type RecordError struct {
	Index int
	URL   string
	Name  string
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// Report summarises a seeding run.
type Report struct {
	Succeeded int
	Failed    int
	// Total is the catalog size after seeding; -1 when it could not be counted.
	Total  int
	Errors []RecordError
}

// Service upserts records one at a time so a bad record never aborts the run.
type Service struct {
	catalog Catalog
}

// New creates a seeding service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Seed normalizes and upserts every record keyed by URL. Per-record failures
// are counted and reported; only a cancelled context stops the run early.
func (s *Service) Seed(ctx context.Context, records []assessment.Record) (Report, error) {
	log := logpkg.FromContext(ctx)
	rep := Report{Total: -1}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("seed interrupted after %d records: %w", i, err)
		}

		a := assessment.FromRecord(rec)
		if err := s.upsert(ctx, &a); err != nil {
			rep.Failed++
			rep.Errors = append(rep.Errors, RecordError{Index: i, URL: a.URL, Name: a.Name, Err: err})
			log.Warn("assessment not stored", zap.Int("index", i), zap.String("name", a.Name), zap.Error(err))
			continue
		}
		rep.Succeeded++
		log.Info("assessment stored", zap.String("name", a.Name))
	}

	total, err := s.catalog.Count(ctx)
	if err != nil {
		log.Warn("count catalog", zap.Error(err))
		return rep, nil
	}
	rep.Total = total
	return rep, nil
}

func (s *Service) upsert(ctx context.Context, a *assessment.Assessment) error {
	if a.URL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidRecord)
	}
	return s.catalog.Upsert(ctx, a)
}
