package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/guard"
)

var ErrCreatePrizeCommandIsNotConstructed = errors.New(
	"CreatePrizeCommand must be created via NewCreatePrizeCommand constructor",
)

// CreatePrizeCommand adds a row to the prize table.
type CreatePrizeCommand struct {
	actor      kernel.Actor
	prizeID    kernel.UUID
	definition prize.Definition
	weight     float64
	color      string

	guard guard.ConstructorGuard
}

func NewCreatePrizeCommand(
	actor kernel.Actor,
	prizeID kernel.UUID,
	def prize.Definition,
	weight float64,
	color string,
) (CreatePrizeCommand, error) {
	if err := errors.Join(actor.Validate(), prizeID.Validate(), def.Validate()); err != nil {
		return CreatePrizeCommand{}, err
	}
	return CreatePrizeCommand{
		actor:      actor,
		prizeID:    prizeID,
		definition: def,
		weight:     weight,
		color:      color,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePrizeCommand) Validate() error {
	return c.guard.Validate(ErrCreatePrizeCommandIsNotConstructed)
}
