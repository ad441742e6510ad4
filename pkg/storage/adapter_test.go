package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/models"
	"github.com/sandeepmed2/property-registration/pkg/storage"
	"github.com/sandeepmed2/property-registration/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	property := &models.Property{
		PropertyID: "P-1",
		OwnerKey:   keys.Account("alice", "T1"),
		Price:      300,
		Status:     models.ON_SALE,
		CreatedAt:  now,
		UpdatedAt:  now.Add(time.Hour),
	}

	t.Run("Round Trip", func(t *testing.T) {
		ledger := memory.New()
		require.NoError(t, ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
			return storage.Save(ctx, tx, keys.Property("P-1"), property)
		}))

		require.NoError(t, ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
			got, err := storage.Load[models.Property](ctx, tx, keys.Property("P-1"))
			require.NoError(t, err)
			assert.Equal(t, property, got)
			return nil
		}))
	})

	t.Run("Exists", func(t *testing.T) {
		ledger := memory.New()
		require.NoError(t, ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
			ok, err := storage.Exists(ctx, tx, keys.Property("P-1"))
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, tx.Put(ctx, keys.Property("P-2"), []byte{}))
			ok, err = storage.Exists(ctx, tx, keys.Property("P-2"))
			require.NoError(t, err)
			assert.False(t, ok, "empty values do not count as stored")

			require.NoError(t, storage.Save(ctx, tx, keys.Property("P-1"), property))
			ok, err = storage.Exists(ctx, tx, keys.Property("P-1"))
			require.NoError(t, err)
			assert.True(t, ok)
			return nil
		}))
	})

	t.Run("Not Found", func(t *testing.T) {
		ledger := memory.New()
		require.NoError(t, ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
			_, err := storage.Load[models.Account](ctx, tx, keys.Account("bob", "T9"))
			assert.ErrorIs(t, err, storage.ErrNotFound)
			return nil
		}))
	})

	t.Run("Corrupt Record", func(t *testing.T) {
		ledger := memory.New()
		require.NoError(t, ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
			require.NoError(t, tx.Put(ctx, keys.Property("P-1"), []byte("{not json")))
			_, err := storage.Load[models.Property](ctx, tx, keys.Property("P-1"))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "failed to unmarshal")
			return nil
		}))
	})
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Success After Conflict", func(t *testing.T) {
		calls := 0
		err := storage.Retry(ctx, 3, func() error {
			calls++
			if calls < 2 {
				return storage.ErrConflict
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Gives Up", func(t *testing.T) {
		calls := 0
		err := storage.Retry(ctx, 3, func() error {
			calls++
			return storage.ErrConflict
		})
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Equal(t, 3, calls)
	})

	t.Run("Other Errors Are Not Retried", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := storage.Retry(ctx, 3, func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
