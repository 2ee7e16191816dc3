package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/bidbook/internal/db"
)

// FailOnNthExecUoW runs procedures in a real transaction but makes the Nth
// write (ExecContext, counted from 1) return Err. Reads are not counted.
// Rollback tests use it to fail a procedure part-way through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.RunTx(ctx, u.DB, func(tx *sql.Tx) db.DBTX {
		return &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err}
	}, fn)
}

type failingWrites struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
