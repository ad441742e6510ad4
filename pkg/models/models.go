package models

import (
	"fmt"
	"time"

	"github.com/sandeepmed2/property-registration/pkg/keys"
)

// PropertyStatus defines the possible states of a property.
type PropertyStatus string

const (
	REGISTERED PropertyStatus = "registered"
	ON_SALE    PropertyStatus = "onSale"
)

// ParsePropertyStatus returns the status named by s, or false if s is not a known status.
func ParsePropertyStatus(s string) (PropertyStatus, bool) {
	switch PropertyStatus(s) {
	case REGISTERED, ON_SALE:
		return PropertyStatus(s), true
	default:
		return "", false
	}
}

// AccountRequest is a pending account registration. It is never mutated.
type AccountRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TaxID       string    `json:"tax_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// Account is an approved account holding a spendable balance.
type Account struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	TaxID     string    `json:"tax_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the ledger key of the account.
func (a *Account) Key() keys.Key {
	return keys.Account(a.Name, a.TaxID)
}

// Credit adds amount to the balance and stamps the update time.
func (a *Account) Credit(amount int64, now time.Time) {
	a.Balance += amount
	a.UpdatedAt = now
}

// Debit removes amount from the balance and stamps the update time.
// The balance never goes negative.
func (a *Account) Debit(amount int64, now time.Time) error {
	if a.Balance < amount {
		return fmt.Errorf("balance %d below debit %d", a.Balance, amount)
	}
	a.Balance -= amount
	a.UpdatedAt = now
	return nil
}

// PropertyRequest is a pending property registration. It is never mutated.
type PropertyRequest struct {
	PropertyID  string         `json:"property_id"`
	OwnerKey    keys.Key       `json:"owner_key"`
	Price       int64          `json:"price"`
	Status      PropertyStatus `json:"status"`
	RequestedAt time.Time      `json:"requested_at"`
}

// Property is an approved property owned by an account.
type Property struct {
	PropertyID string         `json:"property_id"`
	OwnerKey   keys.Key       `json:"owner_key"`
	Price      int64          `json:"price"`
	Status     PropertyStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
