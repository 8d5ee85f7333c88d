package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/watchchill/watchchill/internal/domain"
)

// opTimeout bounds every repository operation so nothing blocks indefinitely
// on a wedged connection.
const opTimeout = 5 * time.Second

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// classifyError maps retryable storage failures onto ErrTransientStorage.
// Because every multi-record mutation runs in a single transaction, a failure
// classified as transient is guaranteed to have applied nothing.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var conflict *domain.SeatConflictError
	if errors.Is(err, domain.ErrRecordNotFound) || errors.As(err, &conflict) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
			return fmt.Errorf("%w: %v", domain.ErrTransientStorage, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrTransientStorage, err)
	}

	return err
}
