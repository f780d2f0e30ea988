package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/lib/pq"

	"github.com/kailas-cloud/assessrec/internal/db"
	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

//go:embed schema.sql
var schemaSQL string

const (
	selectAllSQL = `SELECT url, name, description, test_type, adaptive_support, remote_support, duration
FROM assessments ORDER BY id`

	upsertSQL = `INSERT INTO assessments
    (url, name, description, test_type, adaptive_support, remote_support, duration)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (url) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    test_type = EXCLUDED.test_type,
    adaptive_support = EXCLUDED.adaptive_support,
    remote_support = EXCLUDED.remote_support,
    duration = EXCLUDED.duration,
    updated_at = now()`

	countSQL = `SELECT COUNT(*) FROM assessments`
)

// PostgresRepo reads and writes the assessments table.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgres creates a Postgres catalog repository.
func NewPostgres(sqlDB *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: sqlDB}
}

// EnsureSchema creates the assessments table if it does not exist.
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return &db.Error{Op: "CREATE TABLE", Err: err}
	}
	return nil
}

// FetchAll returns every row in insertion order. NULL columns are left out of
// the record so the usual defaults apply.
func (r *PostgresRepo) FetchAll(ctx context.Context) ([]assessment.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer func() { _ = rows.Close() }()

	out := make([]assessment.Record, 0)
	for rows.Next() {
		var (
			url                          string
			name, desc, adaptive, remote sql.NullString
			testTypes                    pq.StringArray
			duration                     sql.NullInt64
		)
		if err := rows.Scan(&url, &name, &desc, &testTypes, &adaptive, &remote, &duration); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("scan row: %w", err)}
		}

		rec := assessment.Record{
			assessment.FieldURL:      url,
			assessment.FieldTestType: []string(testTypes),
		}
		setNullString(rec, assessment.FieldName, name)
		setNullString(rec, assessment.FieldDescription, desc)
		setNullString(rec, assessment.FieldAdaptiveSupport, adaptive)
		setNullString(rec, assessment.FieldRemoteSupport, remote)
		if duration.Valid {
			rec[assessment.FieldDuration] = int(duration.Int64)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return out, nil
}

// Upsert inserts an assessment or updates the row with the same URL.
func (r *PostgresRepo) Upsert(ctx context.Context, a *assessment.Assessment) error {
	if a.URL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidRecord)
	}
	types := a.TestTypes
	if types == nil {
		types = []string{}
	}
	_, err := r.db.ExecContext(ctx, upsertSQL,
		a.URL, a.Name, a.Description, pq.Array(types), a.AdaptiveSupport, a.RemoteSupport, a.Duration,
	)
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}

// Count returns the number of rows.
func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countSQL).Scan(&n); err != nil {
		return 0, &db.Error{Op: db.OpCount, Err: err}
	}
	return n, nil
}

// Ping checks database connectivity.
func (r *PostgresRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

func setNullString(rec assessment.Record, key string, v sql.NullString) {
	if v.Valid {
		rec[key] = v.String
	}
}
