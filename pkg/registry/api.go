package registry

import (
	"context"

	"github.com/sandeepmed2/property-registration/pkg/models"
)

// AccountRequestInput carries the fields of a new account registration.
type AccountRequestInput struct {
	Name  string
	Email string
	Phone string
	TaxID string
}

// PropertyRequestInput carries the fields of a new property registration.
type PropertyRequestInput struct {
	OwnerName  string
	OwnerTaxID string
	PropertyID string
	Price      int64
}

// AccountRegistry defines the operations on accounts.
type AccountRegistry interface {
	RequestAccount(ctx context.Context, in AccountRequestInput) (*models.AccountRequest, error)
	ApproveAccount(ctx context.Context, name, taxID string) (*models.Account, error)
	ViewAccount(ctx context.Context, name, taxID string) (*models.Account, error)
	Recharge(ctx context.Context, name, taxID, code string) error
}

// PropertyRegistry defines the operations on properties.
type PropertyRegistry interface {
	RequestProperty(ctx context.Context, in PropertyRequestInput) (*models.PropertyRequest, error)
	ApproveProperty(ctx context.Context, propertyID string) (*models.Property, error)
	ViewProperty(ctx context.Context, propertyID string) (*models.Property, error)
	UpdateStatus(ctx context.Context, propertyID, ownerName, ownerTaxID, status string) error
	Purchase(ctx context.Context, propertyID, buyerName, buyerTaxID string) error
}

// Registry is the full set of registry operations.
type Registry interface {
	AccountRegistry
	PropertyRegistry
}
