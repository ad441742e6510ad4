// Package events publishes domain events for committed registry invocations.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event.
type Type string

const (
	AccountRequested      Type = "account.requested"
	AccountApproved       Type = "account.approved"
	AccountRecharged      Type = "account.recharged"
	PropertyRequested     Type = "property.requested"
	PropertyApproved      Type = "property.approved"
	PropertyStatusUpdated Type = "property.status_updated"
	PropertyPurchased     Type = "property.purchased"
)

// Event describes a state change that has been committed to the ledger.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New builds an event with a fresh ID. key is the ledger key of the record the
// event is about and is used as the partitioning key by ordered transports.
func New(eventType Type, key string, payload any, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		Key:        key,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// RechargePayload is the payload of an AccountRecharged event.
type RechargePayload struct {
	AccountKey string `json:"account_key"`
	Code       string `json:"code"`
	Amount     int64  `json:"amount"`
	Balance    int64  `json:"balance"`
}

// StatusPayload is the payload of a PropertyStatusUpdated event.
type StatusPayload struct {
	PropertyID string `json:"property_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// PurchasePayload is the payload of a PropertyPurchased event.
type PurchasePayload struct {
	PropertyID string `json:"property_id"`
	SellerKey  string `json:"seller_key"`
	BuyerKey   string `json:"buyer_key"`
	Price      int64  `json:"price"`
}

// Publisher defines the interface for a component that delivers committed events.
type Publisher interface {
	// Publish delivers a single event.
	Publish(ctx context.Context, event Event) error
}

// NoOpPublisher discards every event.
type NoOpPublisher struct{}

// Make sure we conform to the interface
var _ Publisher = NoOpPublisher{}

// Publish does nothing.
func (NoOpPublisher) Publish(context.Context, Event) error { return nil }
