package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrCourierIsUnavailable is returned when dispatching to a courier that is
// off shift or deleted.
var ErrCourierIsUnavailable = errors.New("courier is unavailable")

// OrderAssigner dispatches a courier to an order on behalf of a manager.
//
// Business rules:
//   - Only owners and supervisors dispatch; supervisors only orders in their
//     scope and only couriers on their team
//   - The courier must be available and not deleted
//   - A supervisor who dispatches becomes the order's attributed supervisor;
//     owner dispatches keep the existing attribution
//
// Example usage:
//
//	assigner := services.NewOrderAssigner(services.NewScopeResolver())
//	if err := assigner.Assign(actor, o, c, time.Now()); err != nil {
//	    return err
//	}
type OrderAssigner struct {
	scope ScopeResolver
}

func NewOrderAssigner(scope ScopeResolver) OrderAssigner {
	return OrderAssigner{scope: scope}
}

// Assign validates the dispatch and applies it to o.
func (a OrderAssigner) Assign(actor kernel.Actor, o *order.Order, c *courier.Courier, now time.Time) error {
	attribution, err := a.authorize(actor, o, c)
	if err != nil {
		return err
	}
	return o.Assign(c.ID(), attribution, now)
}

// CheckReassign runs the dispatch checks for moving an already dispatched order
// to c without touching o. The change itself is applied with Order.Edit.
func (a OrderAssigner) CheckReassign(actor kernel.Actor, o *order.Order, c *courier.Courier) error {
	if o.Status().IsTerminal() {
		return errs.NewConflictError("order status", o.Status().String(), "edit")
	}
	if o.Courier() == nil {
		return errs.NewConflictErrorWithCause(
			"order status", o.Status().String(), "courier change",
			errors.New("dispatch a pending order with POST /orders/{id}/assign"),
		)
	}
	_, err := a.authorize(actor, o, c)
	return err
}

func (a OrderAssigner) authorize(actor kernel.Actor, o *order.Order, c *courier.Courier) (*kernel.UUID, error) {
	if err := errors.Join(actor.Validate(), o.Validate(), c.Validate()); err != nil {
		return nil, err
	}

	var attribution *kernel.UUID

	switch actor.Role() {
	case kernel.RoleOwner:
	case kernel.RoleSupervisor:
		// an unattributed pending order is claimed by the supervisor dispatching it
		claimable := o.Supervisor() == nil && o.Status() == order.Pending
		if !claimable && !a.scope.CanEditOrder(actor, o) {
			return nil, errs.NewForbiddenError(actor.String(), "assign order "+o.ID().String())
		}
		if !c.IsSupervisedBy(actor.ID()) {
			return nil, errs.NewForbiddenError(actor.String(), "dispatch courier "+c.ID().String())
		}
		id := actor.ID()
		attribution = &id
	case kernel.RoleUnknown, kernel.RoleCourier, kernel.RoleCustomer, kernel.RoleProvider:
		return nil, errs.NewForbiddenError(actor.String(), "assign couriers")
	}

	if c.IsDeleted() || !c.IsAvailable() {
		return nil, ErrCourierIsUnavailable
	}

	return attribution, nil
}
