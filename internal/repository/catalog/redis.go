package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// hashStore is the consumer interface for the Redis catalog (ISP).
type hashStore interface {
	Ping(ctx context.Context) error
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// RedisRepo stores one hash per assessment under <prefix>assessment:<url>.
type RedisRepo struct {
	store  hashStore
	prefix string
}

// NewRedis creates a Redis/Valkey catalog repository.
func NewRedis(s hashStore, keyPrefix string) *RedisRepo {
	return &RedisRepo{store: s, prefix: keyPrefix}
}

// FetchAll returns every stored assessment ordered by key.
func (r *RedisRepo) FetchAll(ctx context.Context) ([]assessment.Record, error) {
	keys, err := r.store.Scan(ctx, r.pattern())
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	if len(keys) == 0 {
		return []assessment.Record{}, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	out := make([]assessment.Record, 0, len(hashes))
	for _, h := range hashes {
		if len(h) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		out = append(out, recordFromHash(h))
	}
	return out, nil
}

// Upsert writes an assessment keyed by its URL, replacing stored fields.
func (r *RedisRepo) Upsert(ctx context.Context, a *assessment.Assessment) error {
	if a.URL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidRecord)
	}
	fields, err := assessmentToHash(a)
	if err != nil {
		return err
	}
	key := r.key(a.URL)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Count returns the number of stored assessments.
func (r *RedisRepo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.pattern())
	if err != nil {
		return 0, fmt.Errorf("scan catalog: %w", err)
	}
	return len(keys), nil
}

// Ping checks store connectivity.
func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *RedisRepo) key(url string) string {
	return r.prefix + "assessment:" + url
}

func (r *RedisRepo) pattern() string {
	return r.prefix + "assessment:*"
}
