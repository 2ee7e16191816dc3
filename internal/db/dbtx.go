package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories run their statements against. Both the shared
// *sql.DB handle and a *sql.Tx opened by UnitOfWork satisfy it, so the same
// repository code serves single statements and multi-step procedures.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = (*sql.Conn)(nil)
)
