// Package dbx holds the tiny DB abstraction shared by storage code:
// a minimal interface implemented by both *sql.DB and *sql.Tx, so backends
// can run against either without caring which they were handed.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our storage backends.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
