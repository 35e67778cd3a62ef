package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListPrizesQueryIsNotConstructed = errors.New(
	"ListPrizesQuery must be created via NewListPrizesQuery constructor",
)

// ListPrizesQuery reads the prize table. Owners see every prize; everybody else
// sees the active ones that make up the wheel.
type ListPrizesQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListPrizesQuery(actor kernel.Actor) (ListPrizesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPrizesQuery{}, err
	}
	return ListPrizesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPrizesQuery) Validate() error {
	return q.guard.Validate(ErrListPrizesQueryIsNotConstructed)
}

func (q ListPrizesQuery) Actor() kernel.Actor {
	return q.actor
}

type PrizeResponse struct {
	ID         kernel.UUID
	Name       string
	Type       string
	Value      int64
	ProviderID *kernel.UUID
	Weight     float64
	Active     bool
	Color      string
}
