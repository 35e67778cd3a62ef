package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventType names a change recorded on an Order for downstream consumers.
type EventType string

const (
	EventCreated       EventType = "order.created"
	EventEdited        EventType = "order.edited"
	EventStatusChanged EventType = "order.status_changed"
	EventDeleted       EventType = "order.deleted"
)

// Event is a fact raised by the Order aggregate. Events are collected on the
// aggregate and published by the unit of work only after a successful commit.
type Event struct {
	Type           EventType
	OrderID        kernel.UUID
	BundleID       *kernel.UUID
	Status         Status
	PreviousStatus Status
	CourierID      *kernel.UUID
	OccurredAt     time.Time
}
