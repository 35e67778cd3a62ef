package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand soft-deletes a courier; its assignments cascade away.
type DeleteCourierCommand struct {
	actor     kernel.Actor
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCourierCommand(actor kernel.Actor, courierID kernel.UUID) (DeleteCourierCommand, error) {
	if err := errors.Join(actor.Validate(), courierID.Validate()); err != nil {
		return DeleteCourierCommand{}, err
	}
	return DeleteCourierCommand{actor: actor, courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

func (c DeleteCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
