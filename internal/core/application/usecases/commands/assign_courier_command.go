package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand dispatches a courier to an order. On a pending order it
// drives the pending to assigned transition; on a dispatched order it is a
// reassignment that keeps the status.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(actor, orderID, courierID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignCourierCommand struct {
	actor     kernel.Actor
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(actor kernel.Actor, orderID, courierID kernel.UUID) (AssignCourierCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate(), courierID.Validate()); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		actor:     actor,
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
