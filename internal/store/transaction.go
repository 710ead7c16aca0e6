package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// Otherwise, the transaction is committed.
// A panic in fn rolls the transaction back and is re-raised. Nothing is
// logged here: every outcome reaches the caller as an error or a panic.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			// ALLOW-PANIC: Propagating caught panic from transaction
			panic(p)
		}
	}()

	err = fn(ctx, tx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}
	return nil
}

// WithinTx runs fn against a transaction. When db is a *sql.DB a new
// transaction is started with RunInTransaction; any other DBTX (typically
// a *sql.Tx owned by the caller) is used as is.
func WithinTx(ctx context.Context, db DBTX, fn func(ctx context.Context, q DBTX) error) error {
	sqlDB, ok := db.(*sql.DB)
	if !ok {
		return fn(ctx, db)
	}
	return RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, tx)
	})
}
