package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their line items.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete hard-removes a non-terminal order.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByBundle retrieves every child order of a checkout.
	GetByBundle(ctx context.Context, bundleID kernel.UUID) ([]*order.Order, error)

	// CountByStatus returns how many orders sit in each status.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
