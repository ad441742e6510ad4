package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandeepmed2/property-registration/pkg/keys"
)

// Exists reports whether a non-empty value is stored under key.
func Exists(ctx context.Context, tx Tx, key keys.Key) (bool, error) {
	value, err := tx.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return len(value) > 0, nil
}

// Load reads and decodes the record stored under key.
func Load[T any](ctx context.Context, tx Tx, key keys.Key) (*T, error) {
	value, err := tx.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	var record T
	if err := json.Unmarshal(value, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return &record, nil
}

// Save encodes record and stores it under key, overwriting any prior value.
func Save[T any](ctx context.Context, tx Tx, key keys.Key, record *T) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := tx.Put(ctx, key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
