package seed

import (
	"context"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// Catalog is the writable catalog store.
type Catalog interface {
	Upsert(ctx context.Context, a *assessment.Assessment) error
	Count(ctx context.Context) (int, error)
}
