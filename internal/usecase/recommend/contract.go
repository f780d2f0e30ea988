package recommend

import (
	"context"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// CatalogSource returns the full current catalog. It is called once per request;
// implementations do no filtering.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]assessment.Record, error)
}
