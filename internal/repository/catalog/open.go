package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/assessrec/internal/config"
	dbPostgres "github.com/kailas-cloud/assessrec/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/assessrec/internal/db/redis"
	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// Repository is a catalog store that can be read, written and checked.
type Repository interface {
	FetchAll(ctx context.Context) ([]assessment.Record, error)
	Upsert(ctx context.Context, a *assessment.Assessment) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// Backend is an opened catalog store. Writer is nil for the file driver.
type Backend struct {
	Source interface {
		FetchAll(ctx context.Context) ([]assessment.Record, error)
		Ping(ctx context.Context) error
	}
	Writer Repository
	Close  func()
}

// Compile-time checks.
var (
	_ Repository = (*RedisRepo)(nil)
	_ Repository = (*PostgresRepo)(nil)
)

// Open builds the catalog for the configured driver and waits until its store
// answers. Postgres tables are created if missing.
func Open(ctx context.Context, cfg config.CatalogConfig) (*Backend, error) {
	readiness := time.Duration(cfg.ReadinessTimeout) * time.Second

	switch cfg.Driver {
	case config.DriverFile:
		src := NewFileSource(cfg.File)
		if err := src.Ping(ctx); err != nil {
			return nil, err
		}
		return &Backend{Source: src, Close: func() {}}, nil

	case config.DriverRedis, config.DriverValkey:
		store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.Addrs, Password: cfg.Password})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, err
		}
		repo := NewRedis(store, cfg.KeyPrefix)
		return &Backend{Source: repo, Writer: repo, Close: store.Close}, nil

	case config.DriverPostgres:
		client, err := dbPostgres.New(dbPostgres.Config{
			DSN:          cfg.DSN,
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		if err := client.WaitForReady(ctx, readiness); err != nil {
			client.Close()
			return nil, err
		}
		repo := NewPostgres(client.DB())
		if err := repo.EnsureSchema(ctx); err != nil {
			client.Close()
			return nil, err
		}
		return &Backend{Source: repo, Writer: repo, Close: client.Close}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, cfg.Driver)
	}
}
