// Package postgres provides a ledger substrate on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS ledger_state (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Pool is the subset of *pgxpool.Pool used by the Ledger.
type Pool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Ledger implements storage.Ledger with one SERIALIZABLE transaction per invocation.
// Serialization failures are reported as storage.ErrConflict and attempted again.
type Ledger struct {
	pool        Pool
	MaxAttempts int
}

// New creates a Ledger over an existing pool.
func New(pool Pool) *Ledger {
	return &Ledger{pool: pool, MaxAttempts: storage.DefaultMaxAttempts}
}

// Connect creates a connection pool for connString and checks that the database answers.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// Make sure we conform to the interface
var _ storage.Ledger = (*Ledger)(nil)

// EnsureSchema creates the ledger table if it does not exist.
func (l *Ledger) EnsureSchema(ctx context.Context) error {
	if _, err := l.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create ledger schema: %w", err)
	}
	return nil
}

// RunInTransaction executes fn inside a SERIALIZABLE database transaction.
func (l *Ledger) RunInTransaction(ctx context.Context, fn func(tx storage.Tx) error) error {
	return storage.Retry(ctx, l.MaxAttempts, func() error {
		pgTx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
		if err != nil {
			return fmt.Errorf("tx begin failed: %w", classify(err))
		}
		defer pgTx.Rollback(ctx)

		tx := &transaction{tx: pgTx}
		err = fn(tx)
		tx.closed = true
		if err != nil {
			return err
		}

		if err := pgTx.Commit(ctx); err != nil {
			if c := classify(err); errors.Is(c, storage.ErrConflict) {
				return c
			}
			return fmt.Errorf("%w: tx commit failed: %w", storage.ErrCommit, err)
		}
		return nil
	})
}

type transaction struct {
	tx     pgx.Tx
	closed bool
}

func (t *transaction) Get(ctx context.Context, key keys.Key) ([]byte, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}

	var value []byte
	err := t.tx.QueryRow(ctx, "SELECT value FROM ledger_state WHERE key = $1", string(key)).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger read failed: %w", classify(err))
	}
	return value, nil
}

func (t *transaction) Put(ctx context.Context, key keys.Key, value []byte) error {
	if t.closed {
		return storage.ErrTxClosed
	}

	_, err := t.tx.Exec(ctx,
		`INSERT INTO ledger_state (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		string(key), value,
	)
	if err != nil {
		return fmt.Errorf("ledger write failed: %w", classify(err))
	}
	return nil
}

// classify maps serialization and deadlock failures to storage.ErrConflict.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.Message)
	}
	return err
}
