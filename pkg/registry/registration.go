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

// RequestAccount records a pending account registration.
func (s *Service) RequestAccount(ctx context.Context, in AccountRequestInput) (_ *models.AccountRequest, err error) {
	defer s.observe(ctx, OpRequestAccount, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApplicant); err != nil {
		return nil, err
	}
	if err := validIdentifier(in.Name, in.TaxID); err != nil {
		return nil, err
	}

	requestKey := keys.AccountRequest(in.Name, in.TaxID)
	var request *models.AccountRequest
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		exists, err := storage.Exists(ctx, tx, requestKey)
		if err != nil {
			return fmt.Errorf("failed to check account request: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateRequest, requestKey)
		}

		request = &models.AccountRequest{
			Name:        in.Name,
			Email:       in.Email,
			Phone:       in.Phone,
			TaxID:       in.TaxID,
			RequestedAt: s.now(),
		}
		return storage.Save(ctx, tx, requestKey, request)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.AccountRequested, string(requestKey), request, request.RequestedAt))
	return request, nil
}

// ApproveAccount creates the account of a pending request with a zero balance.
// The request record is kept.
func (s *Service) ApproveAccount(ctx context.Context, name, taxID string) (_ *models.Account, err error) {
	defer s.observe(ctx, OpApproveAccount, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApprover); err != nil {
		return nil, err
	}
	if err := validIdentifier(name, taxID); err != nil {
		return nil, err
	}

	requestKey := keys.AccountRequest(name, taxID)
	accountKey := keys.Account(name, taxID)
	var account *models.Account
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		request, err := storage.Load[models.AccountRequest](ctx, tx, requestKey)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrRequestNotFound, requestKey)
		}
		if err != nil {
			return fmt.Errorf("failed to load account request: %w", err)
		}

		exists, err := storage.Exists(ctx, tx, accountKey)
		if err != nil {
			return fmt.Errorf("failed to check account: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrAlreadyApproved, accountKey)
		}

		now := s.now()
		account = &models.Account{
			Name:      request.Name,
			Email:     request.Email,
			Phone:     request.Phone,
			TaxID:     request.TaxID,
			Balance:   0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return storage.Save(ctx, tx, accountKey, account)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.AccountApproved, string(accountKey), account, account.CreatedAt))
	return account, nil
}

// RequestProperty records a pending property registration for an existing account.
func (s *Service) RequestProperty(ctx context.Context, in PropertyRequestInput) (_ *models.PropertyRequest, err error) {
	defer s.observe(ctx, OpRequestProperty, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApplicant); err != nil {
		return nil, err
	}
	if err := validIdentifier(in.PropertyID); err != nil {
		return nil, err
	}
	if err := validIdentifier(in.OwnerName, in.OwnerTaxID); err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrice, in.Price)
	}

	requestKey := keys.PropertyRequest(in.PropertyID)
	ownerKey := keys.Account(in.OwnerName, in.OwnerTaxID)
	var request *models.PropertyRequest
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		exists, err := storage.Exists(ctx, tx, requestKey)
		if err != nil {
			return fmt.Errorf("failed to check property request: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrDuplicateRequest, requestKey)
		}

		ownerExists, err := storage.Exists(ctx, tx, ownerKey)
		if err != nil {
			return fmt.Errorf("failed to check owner account: %w", err)
		}
		if !ownerExists {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, ownerKey)
		}

		request = &models.PropertyRequest{
			PropertyID:  in.PropertyID,
			OwnerKey:    ownerKey,
			Price:       in.Price,
			Status:      models.REGISTERED,
			RequestedAt: s.now(),
		}
		return storage.Save(ctx, tx, requestKey, request)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.PropertyRequested, string(requestKey), request, request.RequestedAt))
	return request, nil
}

// ApproveProperty creates the property of a pending request, copying its
// owner, price and status. The request record is kept.
func (s *Service) ApproveProperty(ctx context.Context, propertyID string) (_ *models.Property, err error) {
	defer s.observe(ctx, OpApproveProperty, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApprover); err != nil {
		return nil, err
	}
	if err := validIdentifier(propertyID); err != nil {
		return nil, err
	}

	requestKey := keys.PropertyRequest(propertyID)
	propertyKey := keys.Property(propertyID)
	var property *models.Property
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		request, err := storage.Load[models.PropertyRequest](ctx, tx, requestKey)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrRequestNotFound, requestKey)
		}
		if err != nil {
			return fmt.Errorf("failed to load property request: %w", err)
		}

		exists, err := storage.Exists(ctx, tx, propertyKey)
		if err != nil {
			return fmt.Errorf("failed to check property: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrAlreadyApproved, propertyKey)
		}

		now := s.now()
		property = &models.Property{
			PropertyID: request.PropertyID,
			OwnerKey:   request.OwnerKey,
			Price:      request.Price,
			Status:     request.Status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return storage.Save(ctx, tx, propertyKey, property)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.PropertyApproved, string(propertyKey), property, property.CreatedAt))
	return property, nil
}
