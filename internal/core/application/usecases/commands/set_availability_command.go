package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand switches a courier on or off shift.
type SetAvailabilityCommand struct {
	actor     kernel.Actor
	courierID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetAvailabilityCommand(actor kernel.Actor, courierID kernel.UUID, available bool) (SetAvailabilityCommand, error) {
	if err := errors.Join(actor.Validate(), courierID.Validate()); err != nil {
		return SetAvailabilityCommand{}, err
	}
	return SetAvailabilityCommand{
		actor:     actor,
		courierID: courierID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

func (c SetAvailabilityCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetAvailabilityCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c SetAvailabilityCommand) Available() bool {
	return c.available
}
