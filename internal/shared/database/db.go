package database

import (
	"context"
	"database/sql"
)

// DBTX is the slice of *sql.DB / *sql.Tx the repositories need, so the
// same query code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
