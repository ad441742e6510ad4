package registry_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandeepmed2/property-registration/pkg/auth"
	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/models"
	"github.com/sandeepmed2/property-registration/pkg/registry"
	"github.com/sandeepmed2/property-registration/pkg/storage"
	"github.com/sandeepmed2/property-registration/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

var (
	applicant = auth.WithClaim(context.Background(), "applicant")
	approver  = auth.WithClaim(context.Background(), "approver")
)

func newService(t *testing.T, opts ...registry.Option) (*registry.Service, *memory.Ledger) {
	t.Helper()
	ledger := memory.New()
	opts = append([]registry.Option{registry.WithClock(func() time.Time { return fixedNow })}, opts...)
	return registry.NewService(ledger, opts...), ledger
}

// seedAccount stores an approved account with the given balance.
func seedAccount(t *testing.T, ledger storage.Ledger, name, taxID string, balance int64) keys.Key {
	t.Helper()
	key := keys.Account(name, taxID)
	require.NoError(t, ledger.RunInTransaction(context.Background(), func(tx storage.Tx) error {
		return storage.Save(context.Background(), tx, key, &models.Account{
			Name:      name,
			Email:     name + "@example.com",
			Phone:     "555-0100",
			TaxID:     taxID,
			Balance:   balance,
			CreatedAt: fixedNow,
			UpdatedAt: fixedNow,
		})
	}))
	return key
}

// seedProperty stores an approved property.
func seedProperty(t *testing.T, ledger storage.Ledger, propertyID string, owner keys.Key, price int64, status models.PropertyStatus) {
	t.Helper()
	require.NoError(t, ledger.RunInTransaction(context.Background(), func(tx storage.Tx) error {
		return storage.Save(context.Background(), tx, keys.Property(propertyID), &models.Property{
			PropertyID: propertyID,
			OwnerKey:   owner,
			Price:      price,
			Status:     status,
			CreatedAt:  fixedNow,
			UpdatedAt:  fixedNow,
		})
	}))
}

// raw returns the stored bytes under each key.
func raw(t *testing.T, ledger storage.Ledger, ks ...keys.Key) map[keys.Key]string {
	t.Helper()
	out := make(map[keys.Key]string, len(ks))
	require.NoError(t, ledger.RunInTransaction(context.Background(), func(tx storage.Tx) error {
		for _, k := range ks {
			v, err := tx.Get(context.Background(), k)
			if err != nil {
				return err
			}
			out[k] = string(v)
		}
		return nil
	}))
	return out
}

func loadAccount(t *testing.T, ledger storage.Ledger, key keys.Key) *models.Account {
	t.Helper()
	var account *models.Account
	require.NoError(t, ledger.RunInTransaction(context.Background(), func(tx storage.Tx) error {
		var err error
		account, err = storage.Load[models.Account](context.Background(), tx, key)
		return err
	}))
	return account
}

func loadProperty(t *testing.T, ledger storage.Ledger, propertyID string) *models.Property {
	t.Helper()
	var property *models.Property
	require.NoError(t, ledger.RunInTransaction(context.Background(), func(tx storage.Tx) error {
		var err error
		property, err = storage.Load[models.Property](context.Background(), tx, keys.Property(propertyID))
		return err
	}))
	return property
}

type observation struct {
	operation string
	outcome   string
}

type recorder struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recorder) ObserveOperation(operation, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{operation, outcome})
}

func TestRecorder(t *testing.T) {
	rec := &recorder{}
	svc, ledger := newService(t, registry.WithRecorder(rec))
	seedAccount(t, ledger, "alice", "T1", 0)

	require.NoError(t, svc.Recharge(applicant, "alice", "T1", "upg100"))
	require.Error(t, svc.Recharge(approver, "alice", "T1", "upg100"))
	_, err := svc.ViewProperty(context.Background(), "P-404")
	require.Error(t, err)

	assert.Equal(t, []observation{
		{registry.OpRecharge, "success"},
		{registry.OpRecharge, "authorization"},
		{registry.OpViewProperty, "not_found"},
	}, rec.seen)
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		kind registry.ErrorKind
	}{
		{fmt.Errorf("%w: caller role approver", auth.ErrUnauthorized), registry.KindAuthorization},
		{fmt.Errorf("%w: \"bogus\"", registry.ErrInvalidCode), registry.KindValidation},
		{registry.ErrInvalidStatus, registry.KindValidation},
		{registry.ErrNoOp, registry.KindValidation},
		{registry.ErrInvalidPrice, registry.KindValidation},
		{registry.ErrInvalidIdentifier, registry.KindValidation},
		{registry.ErrRequestNotFound, registry.KindNotFound},
		{registry.ErrAccountNotFound, registry.KindNotFound},
		{registry.ErrPropertyNotFound, registry.KindNotFound},
		{registry.ErrOwnerNotFound, registry.KindNotFound},
		{registry.ErrDuplicateRequest, registry.KindConflict},
		{registry.ErrAlreadyApproved, registry.KindConflict},
		{registry.ErrSelfPurchase, registry.KindConflict},
		{fmt.Errorf("giving up after 3 attempts: %w", storage.ErrConflict), registry.KindConflict},
		{registry.ErrNotForSale, registry.KindBusinessRule},
		{registry.ErrInsufficientFunds, registry.KindBusinessRule},
		{registry.ErrNotOwner, registry.KindBusinessRule},
		{errors.New("disk on fire"), registry.KindInternal},
		{fmt.Errorf("x: %w", storage.ErrNotFound), registry.KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.kind, registry.Kind(tc.err))
		})
	}
}
