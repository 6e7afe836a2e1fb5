package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens a PostgreSQL connection pool and verifies connectivity.
// Callers own the returned handle and pass it to the repositories.
func Connect(ctx context.Context, uri string) (*sqlx.DB, error) {
	if uri == "" {
		return nil, fmt.Errorf("POSTGRES_URI is required")
	}

	pg, err := sqlx.ConnectContext(ctx, "postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Configure connection pool
	pg.SetMaxOpenConns(25)
	pg.SetMaxIdleConns(25)
	pg.SetConnMaxLifetime(5 * time.Minute)
	pg.SetConnMaxIdleTime(1 * time.Minute)

	if err := pg.PingContext(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return pg, nil
}
