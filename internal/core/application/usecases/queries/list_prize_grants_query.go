package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListPrizeGrantsQueryIsNotConstructed = errors.New(
	"ListPrizeGrantsQuery must be created via NewListPrizeGrantsQuery constructor",
)

// ListPrizeGrantsQuery lists the grants won by the actor. UnredeemedOnly keeps the
// ones still spendable at checkout.
type ListPrizeGrantsQuery struct {
	actor          kernel.Actor
	unredeemedOnly bool
	guard          guard.ConstructorGuard
}

func NewListPrizeGrantsQuery(actor kernel.Actor, unredeemedOnly bool) (ListPrizeGrantsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListPrizeGrantsQuery{}, err
	}
	return ListPrizeGrantsQuery{
		actor:          actor,
		unredeemedOnly: unredeemedOnly,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListPrizeGrantsQuery) Validate() error {
	return q.guard.Validate(ErrListPrizeGrantsQueryIsNotConstructed)
}

func (q ListPrizeGrantsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListPrizeGrantsQuery) UnredeemedOnly() bool {
	return q.unredeemedOnly
}

type GrantResponse struct {
	ID         kernel.UUID
	PrizeID    kernel.UUID
	Name       string
	Type       string
	Value      int64
	ProviderID *kernel.UUID
	GrantedAt  time.Time
	RedeemedAt *time.Time
	BundleID   *kernel.UUID
}
