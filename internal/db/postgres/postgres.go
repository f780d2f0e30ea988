// Package postgres wraps the database/sql pool used by the Postgres catalog.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/kailas-cloud/assessrec/internal/db"
)

// Compile-time check: Client implements db.Pinger.
var _ db.Pinger = (*Client)(nil)

// Config holds connection parameters for the Postgres catalog.
type Config struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Client wraps the SQL connection pool.
type Client struct {
	db *sql.DB
}

// New opens a connection pool. No connection is made until first use.
func New(cfg Config) (*Client, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return &Client{db: sqlDB}, nil
}

// NewFromDB wraps an existing pool (used with sqlmock in tests).
func NewFromDB(sqlDB *sql.DB) *Client {
	return &Client{db: sqlDB}
}

// DB returns the underlying pool.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Ping tests the database connection.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close closes the pool.
func (c *Client) Close() {
	_ = c.db.Close()
}

// WaitForReady polls Ping until the database responds or timeout expires.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		if err := c.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for postgres: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
