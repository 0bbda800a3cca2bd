package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Connect builds the shared connection pool. The pool is owned by the
// process bootstrap and injected into repositories, never held as a
// package-level singleton.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	const op = "storage.postgresql.Connect"

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pool, nil
}
