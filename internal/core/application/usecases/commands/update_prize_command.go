package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdatePrizeCommandIsNotConstructed = errors.New(
	"UpdatePrizeCommand must be created via NewUpdatePrizeCommand constructor",
)

// UpdatePrizeInput is a partial prize edit. Nil fields are left unchanged.
// Grants already won keep the definition they were won with.
type UpdatePrizeInput struct {
	Definition *prize.Definition
	Weight     *float64
	Color      *string
	Active     *bool
}

// UpdatePrizeCommand edits or (de)activates a prize.
type UpdatePrizeCommand struct {
	actor   kernel.Actor
	prizeID kernel.UUID
	input   UpdatePrizeInput

	guard guard.ConstructorGuard
}

func NewUpdatePrizeCommand(actor kernel.Actor, prizeID kernel.UUID, in UpdatePrizeInput) (UpdatePrizeCommand, error) {
	if err := errors.Join(actor.Validate(), prizeID.Validate()); err != nil {
		return UpdatePrizeCommand{}, err
	}
	if in.Definition == nil && in.Weight == nil && in.Color == nil && in.Active == nil {
		return UpdatePrizeCommand{}, errs.NewValueIsRequiredError("patch")
	}
	return UpdatePrizeCommand{actor: actor, prizeID: prizeID, input: in, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePrizeCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePrizeCommandIsNotConstructed)
}
