package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
)

// PrizeRepository persists the prize table.
type PrizeRepository interface {
	Add(ctx context.Context, p *prize.Prize) error
	Update(ctx context.Context, p *prize.Prize) error
	Get(ctx context.Context, id kernel.UUID) (*prize.Prize, error)

	// GetAll returns the prize table in creation order, which is the order the
	// selector builds its cumulative partition in.
	GetAll(ctx context.Context) ([]*prize.Prize, error)
}

// GrantRepository persists won prize instances.
type GrantRepository interface {
	Add(ctx context.Context, g *prize.Grant) error

	// Get retrieves a grant. SELECT ... FOR UPDATE is used inside transactions so
	// two checkouts cannot race on the same grant.
	Get(ctx context.Context, id kernel.UUID) (*prize.Grant, error)

	// Redeem stores the redemption of g. It fails with errs.ConflictError when the
	// stored row was already redeemed.
	Redeem(ctx context.Context, g *prize.Grant) error

	// GetByUser lists a user's grants, newest first.
	GetByUser(ctx context.Context, userID kernel.UUID) ([]*prize.Grant, error)
}
