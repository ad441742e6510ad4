// Package leveldb provides an embedded ledger substrate for single-node deployments.
package leveldb

import (
	"context"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// Ledger implements storage.Ledger on a goleveldb database.
//
// Invocations are serialised by a mutex, and each invocation's writes are
// collected in a batch that is written synchronously when it succeeds.
type Ledger struct {
	mu sync.Mutex
	db *leveldb.DB
}

// Open opens (creating if necessary) the database at path.
func Open(path string) (*Ledger, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to open leveldb at %s: %w", path, err)
	}
	return &Ledger{db: db}, nil
}

// OpenInMemory opens a database that lives only in memory.
func OpenInMemory() (*Ledger, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to open in-memory leveldb: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Make sure we conform to the interface
var _ storage.Ledger = (*Ledger)(nil)

// RunInTransaction executes fn and writes its batch atomically.
func (l *Ledger) RunInTransaction(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &transaction{
		db:     l.db,
		batch:  new(leveldb.Batch),
		writes: make(map[keys.Key][]byte),
	}
	err := fn(tx)
	tx.closed = true
	if err != nil {
		return err
	}
	if tx.batch.Len() == 0 {
		return nil
	}

	if err := l.db.Write(tx.batch, &ldb_opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("%w: failed to write leveldb batch: %w", storage.ErrCommit, err)
	}
	return nil
}

type transaction struct {
	db     *leveldb.DB
	batch  *leveldb.Batch
	writes map[keys.Key][]byte
	closed bool
}

func (t *transaction) Get(_ context.Context, key keys.Key) ([]byte, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if value, ok := t.writes[key]; ok {
		return value, nil
	}

	value, err := t.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from leveldb: %w", key, err)
	}
	return value, nil
}

func (t *transaction) Put(_ context.Context, key keys.Key, value []byte) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	t.writes[key] = stored
	t.batch.Put([]byte(key), stored)
	return nil
}
