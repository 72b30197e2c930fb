package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WaitReady probes the database until it answers or the deadline passes.
// It runs once at process startup so the service does not crashloop while
// the database is still coming up. Transient failures mid-request are not
// retried.
func WaitReady(ctx context.Context, pool *pgxpool.Pool, deadline, interval time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	var lastErr error
	for {
		var one int
		lastErr = pool.QueryRow(ctx, `SELECT 1`).Scan(&one)
		if lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("platform/db: not ready: %w", lastErr)
		case <-time.After(interval):
		}
	}
}
