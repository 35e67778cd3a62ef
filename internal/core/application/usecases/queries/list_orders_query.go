package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders in the actor's scope for one view.
//
// Example:
//
//	view, _ := services.ParseOrderView(c.QueryParam("view"))
//	query, err := NewListOrdersQuery(actor, view)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor kernel.Actor
	view  services.OrderView
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor kernel.Actor, view services.OrderView) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if _, err := services.ParseOrderView(string(view)); err != nil {
		return ListOrdersQuery{}, err
	}
	if view == "" {
		view = services.ViewActive
	}

	return ListOrdersQuery{actor: actor, view: view, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q ListOrdersQuery) View() services.OrderView {
	return q.view
}
