package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UnitOfWork runs a multi-step procedure (lead deletion, lead conversion,
// quote generation, brief import) inside one transaction. Steps execute in
// order against the DBTX handed to fn; any error rolls every step back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return RunTx(ctx, u.db, nil, fn)
}

// RunTx begins a transaction on conn and hands it to fn, decorated by wrap
// when wrap is non-nil. The transaction commits only if fn returns nil; an
// error or a panic in fn rolls it back, and the panic is re-raised.
func RunTx(ctx context.Context, conn *sql.DB, wrap func(*sql.Tx) DBTX, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	var handle DBTX = tx
	if wrap != nil {
		handle = wrap(tx)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && err != nil {
			err = errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
	}()

	if err := fn(ctx, handle); err != nil {
		return err
	}

	finished = true
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
