package storage

import (
	"context"

	"github.com/sandeepmed2/property-registration/pkg/keys"
)

// Tx is the handle of a single invocation against the ledger.
// It is only valid inside the function passed to RunInTransaction.
type Tx interface {
	// Get returns the value stored under key, or nil if nothing is stored.
	// Values put earlier in the same invocation are visible.
	Get(ctx context.Context, key keys.Key) ([]byte, error)

	// Put stores value under key, replacing any prior value.
	Put(ctx context.Context, key keys.Key, value []byte) error
}

// Ledger defines the root interface of the key-value substrate.
// Every write made through the Tx passed to fn commits together, or none do,
// and concurrent invocations never commit conflicting writes to the same key.
type Ledger interface {
	// RunInTransaction executes fn as one all-or-nothing invocation.
	// If fn returns an error nothing is committed and that error is returned.
	RunInTransaction(ctx context.Context, fn func(tx Tx) error) error
}
