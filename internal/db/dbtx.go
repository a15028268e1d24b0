package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories run SQL against: the *sql.DB for one-off reads,
// or the *sql.Tx a UnitOfWork hands its callback.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
