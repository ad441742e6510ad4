package mapping

import (
	"github.com/sandeepmed2/property-registration/pkg/api"
	"github.com/sandeepmed2/property-registration/pkg/models"
	"github.com/sandeepmed2/property-registration/pkg/registry"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToRegistryAccountRequest converts an API NewAccountRequest model to the registry input.
func ToRegistryAccountRequest(req *api.NewAccountRequest) registry.AccountRequestInput {
	return registry.AccountRequestInput{
		Name:  req.Name,
		Email: string(req.Email),
		Phone: req.Phone,
		TaxID: req.TaxId,
	}
}

// ToApiAccountRequest converts a domain AccountRequest model to an API AccountRequest model.
func ToApiAccountRequest(req *models.AccountRequest) *api.AccountRequest {
	return &api.AccountRequest{
		Name:        req.Name,
		Email:       openapi_types.Email(req.Email),
		Phone:       req.Phone,
		TaxId:       req.TaxID,
		RequestedAt: req.RequestedAt,
	}
}

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Name:      account.Name,
		Email:     openapi_types.Email(account.Email),
		Phone:     account.Phone,
		TaxId:     account.TaxID,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToRegistryPropertyRequest converts an API NewPropertyRequest model to the registry input.
func ToRegistryPropertyRequest(req *api.NewPropertyRequest) registry.PropertyRequestInput {
	return registry.PropertyRequestInput{
		OwnerName:  req.OwnerName,
		OwnerTaxID: req.OwnerTaxId,
		PropertyID: req.PropertyId,
		Price:      req.Price,
	}
}

// ToApiPropertyRequest converts a domain PropertyRequest model to an API PropertyRequest model.
func ToApiPropertyRequest(req *models.PropertyRequest) *api.PropertyRequest {
	return &api.PropertyRequest{
		PropertyId:  req.PropertyID,
		OwnerKey:    string(req.OwnerKey),
		Price:       req.Price,
		Status:      api.PropertyStatus(req.Status),
		RequestedAt: req.RequestedAt,
	}
}

// ToApiProperty converts a domain Property model to an API Property model.
func ToApiProperty(property *models.Property) *api.Property {
	return &api.Property{
		PropertyId: property.PropertyID,
		OwnerKey:   string(property.OwnerKey),
		Price:      property.Price,
		Status:     api.PropertyStatus(property.Status),
		CreatedAt:  property.CreatedAt,
		UpdatedAt:  property.UpdatedAt,
	}
}
