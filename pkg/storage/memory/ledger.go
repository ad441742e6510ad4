// Package memory provides an in-process ledger substrate used for tests and
// local runs.
package memory

import (
	"context"
	"sync"

	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// Ledger implements storage.Ledger over a map. Invocations are serialised and
// their writes are applied only when the invocation succeeds.
type Ledger struct {
	mu   sync.Mutex
	data map[keys.Key][]byte
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{data: make(map[keys.Key][]byte)}
}

// Make sure we conform to the interface
var _ storage.Ledger = (*Ledger)(nil)

// RunInTransaction executes fn against a buffered view of the ledger.
func (l *Ledger) RunInTransaction(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &transaction{ledger: l, writes: make(map[keys.Key][]byte)}
	err := fn(tx)
	tx.closed = true
	if err != nil {
		return err
	}

	for key, value := range tx.writes {
		l.data[key] = value
	}
	return nil
}

// Len returns the number of stored keys.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.data)
}

type transaction struct {
	ledger *Ledger
	writes map[keys.Key][]byte
	closed bool
}

func (t *transaction) Get(_ context.Context, key keys.Key) ([]byte, error) {
	if t.closed {
		return nil, storage.ErrTxClosed
	}
	if value, ok := t.writes[key]; ok {
		return clone(value), nil
	}
	return clone(t.ledger.data[key]), nil
}

func (t *transaction) Put(_ context.Context, key keys.Key, value []byte) error {
	if t.closed {
		return storage.ErrTxClosed
	}
	t.writes[key] = clone(value)
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
