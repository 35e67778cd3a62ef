package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventVersion is the envelope schema version written on every event.
const EventVersion = 1

// Event is the envelope consumed by notification delivery and other downstream
// services. Payload is marshalled as JSON.
type Event struct {
	Version     int          `json:"version"`
	Type        string       `json:"type"`
	OccurredAt  time.Time    `json:"occurredAt"`
	AggregateID kernel.UUID  `json:"aggregateId"`
	BundleID    *kernel.UUID `json:"bundleId,omitempty"`
	Payload     any          `json:"payload"`
}

// EventPublisher delivers committed events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// Event types published besides the order.* types raised by the Order aggregate.
const (
	EventBundleCreated = "bundle.created"
	EventPrizeGranted  = "prize.granted"
)

// OrderEventPayload is the payload of every order.* event.
type OrderEventPayload struct {
	Status         string       `json:"status"`
	PreviousStatus string       `json:"previousStatus,omitempty"`
	CourierID      *kernel.UUID `json:"courierId,omitempty"`
	CustomerID     *kernel.UUID `json:"customerId,omitempty"`
	ProviderID     *kernel.UUID `json:"providerId,omitempty"`
}

// BundleCreatedPayload lists the child orders of a committed checkout.
type BundleCreatedPayload struct {
	OrderIDs   []kernel.UUID `json:"orderIds"`
	CustomerID *kernel.UUID  `json:"customerId,omitempty"`
}

// PrizeGrantedPayload describes a won prize.
type PrizeGrantedPayload struct {
	UserID     kernel.UUID  `json:"userId"`
	PrizeID    kernel.UUID  `json:"prizeId"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Value      int64        `json:"value"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
}
