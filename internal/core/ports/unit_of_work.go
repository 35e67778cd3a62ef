package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories it hands out are bound to
// the transaction started by Begin, and domain events raised by aggregates they
// persist are published only after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	PrizeRepository() PrizeRepository
	GrantRepository() GrantRepository
}
