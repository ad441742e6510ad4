// Package api defines the request and response bodies of the HTTP surface.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PropertyStatus defines model for PropertyStatus.
type PropertyStatus string

// Defines values for PropertyStatus.
const (
	Registered PropertyStatus = "registered"
	OnSale     PropertyStatus = "onSale"
)

// NewAccountRequest defines model for NewAccountRequest.
type NewAccountRequest struct {
	Name  string              `json:"name" validate:"required"`
	Email openapi_types.Email `json:"email" validate:"required"`
	Phone string              `json:"phone" validate:"required"`
	TaxId string              `json:"taxId" validate:"required"`
}

// AccountRequest defines model for AccountRequest.
type AccountRequest struct {
	Name        string              `json:"name"`
	Email       openapi_types.Email `json:"email"`
	Phone       string              `json:"phone"`
	TaxId       string              `json:"taxId"`
	RequestedAt time.Time           `json:"requestedAt"`
}

// AccountApproval defines model for AccountApproval.
type AccountApproval struct {
	Name  string `json:"name" validate:"required"`
	TaxId string `json:"taxId" validate:"required"`
}

// Account defines model for Account.
type Account struct {
	Name      string              `json:"name"`
	Email     openapi_types.Email `json:"email"`
	Phone     string              `json:"phone"`
	TaxId     string              `json:"taxId"`
	Balance   int64               `json:"balance"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// Recharge defines model for Recharge.
type Recharge struct {
	Code string `json:"code" validate:"required"`
}

// NewPropertyRequest defines model for NewPropertyRequest.
type NewPropertyRequest struct {
	PropertyId string `json:"propertyId" validate:"required"`
	OwnerName  string `json:"ownerName" validate:"required"`
	OwnerTaxId string `json:"ownerTaxId" validate:"required"`
	Price      int64  `json:"price" validate:"min=0"`
}

// PropertyRequest defines model for PropertyRequest.
type PropertyRequest struct {
	PropertyId  string         `json:"propertyId"`
	OwnerKey    string         `json:"ownerKey"`
	Price       int64          `json:"price"`
	Status      PropertyStatus `json:"status"`
	RequestedAt time.Time      `json:"requestedAt"`
}

// PropertyApproval defines model for PropertyApproval.
type PropertyApproval struct {
	PropertyId string `json:"propertyId" validate:"required"`
}

// Property defines model for Property.
type Property struct {
	PropertyId string         `json:"propertyId"`
	OwnerKey   string         `json:"ownerKey"`
	Price      int64          `json:"price"`
	Status     PropertyStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	OwnerName  string `json:"ownerName" validate:"required"`
	OwnerTaxId string `json:"ownerTaxId" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

// PurchaseRequest defines model for PurchaseRequest.
type PurchaseRequest struct {
	BuyerName  string `json:"buyerName" validate:"required"`
	BuyerTaxId string `json:"buyerTaxId" validate:"required"`
}

// Error defines model for Error.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
