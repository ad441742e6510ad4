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

// UpdateStatus moves a property between registered and onSale. Only the
// current owner may do so, and setting the status it already has is rejected.
func (s *Service) UpdateStatus(ctx context.Context, propertyID, ownerName, ownerTaxID, status string) (err error) {
	defer s.observe(ctx, OpUpdateStatus, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApplicant); err != nil {
		return err
	}
	newStatus, ok := models.ParsePropertyStatus(status)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if err := validIdentifier(propertyID); err != nil {
		return err
	}
	if err := validIdentifier(ownerName, ownerTaxID); err != nil {
		return err
	}

	ownerKey := keys.Account(ownerName, ownerTaxID)
	propertyKey := keys.Property(propertyID)
	var previous models.PropertyStatus
	var updatedAt time.Time
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		ownerExists, err := storage.Exists(ctx, tx, ownerKey)
		if err != nil {
			return fmt.Errorf("failed to check owner account: %w", err)
		}
		if !ownerExists {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, ownerKey)
		}

		property, err := loadProperty(ctx, tx, propertyKey)
		if err != nil {
			return err
		}
		if property.OwnerKey != ownerKey {
			return fmt.Errorf("%w: %s does not own %s", ErrNotOwner, ownerKey, propertyKey)
		}
		if property.Status == newStatus {
			return fmt.Errorf("%w: %s is already %s", ErrNoOp, propertyKey, newStatus)
		}

		previous = property.Status
		property.Status = newStatus
		property.UpdatedAt = s.now()
		updatedAt = property.UpdatedAt
		return storage.Save(ctx, tx, propertyKey, property)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.PropertyStatusUpdated, string(propertyKey), events.StatusPayload{
		PropertyID: propertyID,
		From:       string(previous),
		To:         string(newStatus),
	}, updatedAt))
	return nil
}

// Purchase transfers a property that is on sale to the buyer and moves its
// price from the buyer's balance to the seller's. Every check runs before the
// first write, and the three records are written in one invocation so they
// commit together or not at all.
func (s *Service) Purchase(ctx context.Context, propertyID, buyerName, buyerTaxID string) (err error) {
	defer s.observe(ctx, OpPurchase, time.Now(), &err)

	if err := auth.RequireRole(ctx, auth.RoleApplicant); err != nil {
		return err
	}
	if err := validIdentifier(propertyID); err != nil {
		return err
	}
	if err := validIdentifier(buyerName, buyerTaxID); err != nil {
		return err
	}

	buyerKey := keys.Account(buyerName, buyerTaxID)
	propertyKey := keys.Property(propertyID)
	var transfer events.PurchasePayload
	var purchasedAt time.Time
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		buyer, err := loadAccount(ctx, tx, buyerKey, ErrAccountNotFound)
		if err != nil {
			return err
		}
		property, err := loadProperty(ctx, tx, propertyKey)
		if err != nil {
			return err
		}
		if property.Status != models.ON_SALE {
			return fmt.Errorf("%w: %s is %s", ErrNotForSale, propertyKey, property.Status)
		}
		if property.OwnerKey == buyerKey {
			return fmt.Errorf("%w: %s", ErrSelfPurchase, buyerKey)
		}
		if buyer.Balance < property.Price {
			return fmt.Errorf("%w: balance %d, price %d", ErrInsufficientFunds, buyer.Balance, property.Price)
		}

		sellerKey := property.OwnerKey
		seller, err := storage.Load[models.Account](ctx, tx, sellerKey)
		if err != nil {
			return fmt.Errorf("failed to load seller account %s: %w", sellerKey, err)
		}

		now := s.now()
		if err := buyer.Debit(property.Price, now); err != nil {
			return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
		}
		seller.Credit(property.Price, now)
		property.OwnerKey = buyerKey
		property.Status = models.REGISTERED
		property.UpdatedAt = now

		if err := storage.Save(ctx, tx, sellerKey, seller); err != nil {
			return err
		}
		if err := storage.Save(ctx, tx, buyerKey, buyer); err != nil {
			return err
		}
		if err := storage.Save(ctx, tx, propertyKey, property); err != nil {
			return err
		}

		transfer = events.PurchasePayload{
			PropertyID: propertyID,
			SellerKey:  string(sellerKey),
			BuyerKey:   string(buyerKey),
			Price:      property.Price,
		}
		purchasedAt = now
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.New(events.PropertyPurchased, string(propertyKey), transfer, purchasedAt))
	return nil
}

// ViewProperty returns an approved property.
func (s *Service) ViewProperty(ctx context.Context, propertyID string) (_ *models.Property, err error) {
	defer s.observe(ctx, OpViewProperty, time.Now(), &err)

	if err := validIdentifier(propertyID); err != nil {
		return nil, err
	}

	propertyKey := keys.Property(propertyID)
	var property *models.Property
	err = s.ledger.RunInTransaction(ctx, func(tx storage.Tx) error {
		var err error
		property, err = loadProperty(ctx, tx, propertyKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

func loadProperty(ctx context.Context, tx storage.Tx, key keys.Key) (*models.Property, error) {
	property, err := storage.Load[models.Property](ctx, tx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return property, nil
}
