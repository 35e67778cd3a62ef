package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSpinPrizeCommandIsNotConstructed = errors.New(
	"SpinPrizeCommand must be created via NewSpinPrizeCommand constructor",
)

// SpinPrizeCommand draws one prize for the actor. Spins are independent; there
// is no cooldown.
type SpinPrizeCommand struct {
	actor   kernel.Actor
	grantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSpinPrizeCommand(actor kernel.Actor, grantID kernel.UUID) (SpinPrizeCommand, error) {
	if err := errors.Join(actor.Validate(), grantID.Validate()); err != nil {
		return SpinPrizeCommand{}, err
	}
	return SpinPrizeCommand{actor: actor, grantID: grantID, guard: guard.NewConstructorGuard()}, nil
}

func (c SpinPrizeCommand) Validate() error {
	return c.guard.Validate(ErrSpinPrizeCommandIsNotConstructed)
}

func (c SpinPrizeCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SpinPrizeCommand) GrantID() kernel.UUID {
	return c.grantID
}
