package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepmed2/property-registration/pkg/auth"
	"github.com/sandeepmed2/property-registration/pkg/events"
	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/models"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// rechargeTiers is the closed table of recharge codes.
var rechargeTiers = map[string]int64{
	"upg100":  100,
	"upg500":  500,
	"upg1000": 1000,
}

// RechargeAmount returns the credit of a recharge code.
func RechargeAmount(code string) (int64, bool) {
	amount, ok := rechargeTiers[code]
	return amount, ok
}

// Recharge credits an account with the amount of a recharge code.
func (s *Service) Recharge(ctx context.Context, name, taxID, code string) (err error) {
	defer s.observe(ctx, OpRecharge, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApplicant); err != nil {
		return err
	}
	amount, ok := RechargeAmount(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if err := validIdentifier(name, taxID); err != nil {
		return err
	}

	accountKey := keys.Account(name, taxID)
	var account *models.Account
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		var err error
		account, err = loadAccount(ctx, tx, accountKey, ErrAccountNotFound)
		if err != nil {
			return err
		}

		account.Credit(amount, s.now())
		return storage.Save(ctx, tx, accountKey, account)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.AccountRecharged, string(accountKey), events.RechargePayload{
		AccountKey: string(accountKey),
		Code:       code,
		Amount:     amount,
		Balance:    account.Balance,
	}, account.UpdatedAt))
	return nil
}

// ViewAccount returns an approved account.
func (s *Service) ViewAccount(ctx context.Context, name, taxID string) (_ *models.Account, err error) {
	defer s.observe(ctx, OpViewAccount, time.Now(), &err)

	if err := validIdentifier(name, taxID); err != nil {
		return nil, err
	}

	accountKey := keys.Account(name, taxID)
	var account *models.Account
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		var err error
		account, err = loadAccount(ctx, tx, accountKey, ErrAccountNotFound)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// loadAccount loads the account stored under key, reporting absence as notFound.
func loadAccount(ctx context.Context, tx storage.Tx, key keys.Key, notFound error) (*models.Account, error) {
	account, err := storage.Load[models.Account](ctx, tx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", notFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}
