package services

import (
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// OrderView selects between the default working list, the courier history list
// and the dispatch pool of pending orders no supervisor has claimed yet.
type OrderView string

const (
	ViewActive  OrderView = "active"
	ViewHistory OrderView = "history"
	ViewPool    OrderView = "pool"
)

// ParseOrderView maps a wire value to an OrderView; the empty string means active.
func ParseOrderView(s string) (OrderView, error) {
	switch OrderView(s) {
	case "", ViewActive:
		return ViewActive, nil
	case ViewHistory:
		return ViewHistory, nil
	case ViewPool:
		return ViewPool, nil
	}
	return "", errs.NewValueIsInvalidError("view")
}

// ScopeOptions tune courier visibility. IncludeUnavailable is used by the
// assignment editing screen so inactive couriers stay manageable.
type ScopeOptions struct {
	IncludeUnavailable bool
}

// OrderFilter is the row filter a reader applies to the order table. Nil ID fields
// do not filter. Unattributed keeps only orders without a supervisor. Statuses,
// when non-empty, restricts to those statuses; ExcludeStatuses drops them.
type OrderFilter struct {
	Unattributed    bool
	SupervisorID    *kernel.UUID
	CourierID       *kernel.UUID
	ProviderID      *kernel.UUID
	CustomerID      *kernel.UUID
	Statuses        []order.Status
	ExcludeStatuses []order.Status
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o *order.Order) bool {
	return (!f.Unattributed || o.Supervisor() == nil) &&
		idMatches(f.SupervisorID, o.Supervisor()) &&
		idMatches(f.CourierID, o.Courier()) &&
		idMatches(f.ProviderID, o.ProviderID()) &&
		idMatches(f.CustomerID, o.CustomerID()) &&
		(len(f.Statuses) == 0 || containsStatus(f.Statuses, o.Status())) &&
		!containsStatus(f.ExcludeStatuses, o.Status())
}

// ScopeResolver computes what an actor may see or mutate from its role and the
// assignment registry. It is pure: all state comes in through arguments.
type ScopeResolver struct{}

func NewScopeResolver() ScopeResolver {
	return ScopeResolver{}
}

// VisibleCourierIDs returns the subset of couriers the actor may see:
// owners see all, supervisors see couriers assigned to them (available ones
// unless opts.IncludeUnavailable), couriers see themselves. Deleted couriers
// are never visible.
func (r ScopeResolver) VisibleCourierIDs(
	actor kernel.Actor,
	couriers []*courier.Courier,
	opts ScopeOptions,
) map[kernel.UUID]struct{} {
	out := make(map[kernel.UUID]struct{})
	for _, c := range couriers {
		if r.CanSeeCourier(actor, c, opts) {
			out[c.ID()] = struct{}{}
		}
	}
	return out
}

// CanSeeCourier is the single-courier form of VisibleCourierIDs.
func (r ScopeResolver) CanSeeCourier(actor kernel.Actor, c *courier.Courier, opts ScopeOptions) bool {
	if c == nil || c.IsDeleted() {
		return false
	}

	switch actor.Role() {
	case kernel.RoleOwner:
		return true
	case kernel.RoleSupervisor:
		return c.IsSupervisedBy(actor.ID()) && (opts.IncludeUnavailable || c.IsAvailable())
	case kernel.RoleCourier:
		return c.ID().IsEqual(actor.ID())
	case kernel.RoleUnknown, kernel.RoleCustomer, kernel.RoleProvider:
		return false
	}
	return false
}

// CanSetAvailability allows the courier itself, any owner, and supervisors of
// that courier regardless of its current availability.
func (r ScopeResolver) CanSetAvailability(actor kernel.Actor, c *courier.Courier) bool {
	return r.CanSeeCourier(actor, c, ScopeOptions{IncludeUnavailable: true})
}

// CanManageRegistry reports whether the actor may create, delete or
// (re)assign couriers. Only owners may.
func (r ScopeResolver) CanManageRegistry(actor kernel.Actor) bool {
	return actor.Role() == kernel.RoleOwner
}

// OrderFilter translates the actor and view into a row filter. The pool view is
// open to managers only. Otherwise supervisors see orders they dispatched, couriers see orders carried by them
// (delivered ones only in the history view), providers see their own orders and
// customers the orders they placed.
func (r ScopeResolver) OrderFilter(actor kernel.Actor, view OrderView) (OrderFilter, error) {
	id := actor.ID()

	if view == ViewPool {
		if !actor.Role().IsManager() {
			return OrderFilter{}, errs.NewForbiddenError(actor.String(), "browse the dispatch pool")
		}
		return OrderFilter{Unattributed: true, Statuses: []order.Status{order.Pending}}, nil
	}

	switch actor.Role() {
	case kernel.RoleOwner:
		return OrderFilter{}, nil
	case kernel.RoleSupervisor:
		return OrderFilter{SupervisorID: &id}, nil
	case kernel.RoleCourier:
		if view == ViewHistory {
			return OrderFilter{CourierID: &id, Statuses: []order.Status{order.Delivered}}, nil
		}
		return OrderFilter{CourierID: &id, ExcludeStatuses: []order.Status{order.Delivered}}, nil
	case kernel.RoleProvider:
		return OrderFilter{ProviderID: &id}, nil
	case kernel.RoleCustomer:
		return OrderFilter{CustomerID: &id}, nil
	case kernel.RoleUnknown:
	}
	return OrderFilter{}, errs.NewForbiddenError(actor.String(), "list orders")
}

// CanSeeOrder reports whether the order is in the actor's scope in any view.
func (r ScopeResolver) CanSeeOrder(actor kernel.Actor, o *order.Order) bool {
	if actor.Role() == kernel.RoleCourier {
		id := actor.ID()
		return idMatches(&id, o.Courier())
	}

	filter, err := r.OrderFilter(actor, ViewActive)
	if err != nil {
		return false
	}
	return filter.Matches(o)
}

// CanEditOrder covers edit, reassignment and deletion: owners, and supervisors
// within their scope.
func (r ScopeResolver) CanEditOrder(actor kernel.Actor, o *order.Order) bool {
	switch actor.Role() {
	case kernel.RoleOwner:
		return true
	case kernel.RoleSupervisor:
		return r.CanSeeOrder(actor, o)
	case kernel.RoleUnknown, kernel.RoleCourier, kernel.RoleCustomer, kernel.RoleProvider:
		return false
	}
	return false
}

// AuthorizeTransition checks the role matrix for moving o to next:
//   - owners and supervisors in scope may request any transition
//   - a courier may move its own order into picked_up, in_transit or delivered
//   - a provider may mark its own order ready_for_pickup, or reject it by
//     cancelling when the order allows rejection
//
// Whether the transition itself is legal is decided by the order.
func (r ScopeResolver) AuthorizeTransition(actor kernel.Actor, o *order.Order, next order.Status) error {
	allowed := false

	switch actor.Role() {
	case kernel.RoleOwner, kernel.RoleSupervisor:
		allowed = r.CanEditOrder(actor, o)
	case kernel.RoleCourier:
		allowed = r.CanSeeOrder(actor, o) &&
			(next == order.PickedUp || next == order.InTransit || next == order.Delivered)
	case kernel.RoleProvider:
		allowed = r.CanSeeOrder(actor, o) &&
			(next == order.ReadyForPickup || (next == order.Cancelled && o.CanReject()))
	case kernel.RoleUnknown, kernel.RoleCustomer:
	}

	if !allowed {
		return errs.NewForbiddenError(actor.String(), "move order "+o.ID().String()+" to "+next.String())
	}
	return nil
}

func idMatches(want, got *kernel.UUID) bool {
	if want == nil {
		return true
	}
	return got != nil && want.IsEqual(*got)
}

func containsStatus(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
