package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery lists the couriers the actor may see.
//
// Manage selects the assignment editing context, where supervisors also see their
// unavailable couriers. Available, when set, keeps only couriers whose
// availability matches.
type ListCouriersQuery struct {
	actor     kernel.Actor
	available *bool
	manage    bool
	guard     guard.ConstructorGuard
}

func NewListCouriersQuery(actor kernel.Actor, available *bool, manage bool) (ListCouriersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListCouriersQuery{}, err
	}

	var filter *bool
	if available != nil {
		v := *available
		filter = &v
	}

	return ListCouriersQuery{
		actor:     actor,
		available: filter,
		manage:    manage,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

func (q ListCouriersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListCouriersQuery) Available() *bool {
	return q.available
}

func (q ListCouriersQuery) Manage() bool {
	return q.manage
}

// CourierResponse is the read model of a courier.
type CourierResponse struct {
	ID            kernel.UUID
	Name          string
	Phone         string
	Available     bool
	SupervisorIDs []kernel.UUID
}
