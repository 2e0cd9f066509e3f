package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

type conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ReadStrategy builds the retry strategy used for side-effect free queries.
// One attempt disables retries.
func ReadStrategy(attempts int, delay time.Duration) retry.Strategy {
	if attempts <= 1 {
		return retry.Strategy{Attempts: 1, Backoff: 1}
	}
	return retry.Strategy{
		Attempts: attempts,
		Delay:    delay,
		Backoff:  2,
	}
}

// store is embedded by every repository. Statements run inside the
// transaction carried by ctx when there is one. Only reads outside a
// transaction are retried.
type store struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func (s store) conn(ctx context.Context) conn {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.db.Master
}

func (s store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryContext(ctx, query, args...)
	}

	var rows *sql.Rows
	err := s.retry(ctx, func() error {
		r, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		rows = r
		return nil
	})
	return rows, err
}

func (s store) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRowContext(ctx, query, args...), nil
	}

	var row *sql.Row
	err := s.retry(ctx, func() error {
		row = s.db.QueryRowContext(ctx, query, args...)
		return row.Err()
	})
	return row, err
}

// retry runs fn under the read strategy. It gives up at once on
// cancellation or on errors that would fail the same way again, and does
// not wait after the last attempt.
func (s store) retry(ctx context.Context, fn func() error) error {
	if s.strategy.Attempts <= 1 {
		return fn()
	}

	var last error
	attempt := 0
	err := retry.DoContext(ctx, s.strategy, func() error {
		attempt++
		last = fn()
		if last == nil || attempt >= s.strategy.Attempts || !isTransient(last) {
			return nil
		}
		return last
	})
	if err != nil {
		return err
	}
	return last
}

// Transactor wraps a unit of work in a Postgres transaction. When disabled
// every statement autocommits on its own.
type Transactor struct {
	db      *dbpg.DB
	enabled bool
}

func NewTransactor(db *dbpg.DB, enabled bool) *Transactor {
	return &Transactor{db: db, enabled: enabled}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled || txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func txFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// isTransient reports whether a read may succeed when simply repeated:
// connection failures, serialization conflicts, exhausted resources and
// server shutdowns.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code.Class() {
		case "08", "40", "53", "57":
			return true
		}
		return false
	}
	return true
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isInvalidTextRepresentation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
