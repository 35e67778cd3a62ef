// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, event publishing and live fleet notification.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates,
// including their supervisor assignments.
type CourierRepository interface {
	// Add persists a new courier with its assignments.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists availability, soft deletion and the full assignment set.
	// Assignments missing from the aggregate are removed.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier, deleted or not.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier that is not soft-deleted.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
