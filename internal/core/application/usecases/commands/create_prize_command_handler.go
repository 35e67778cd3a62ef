package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"
)

// CreatePrizeCommandHandler lets an owner configure a new prize.
type CreatePrizeCommandHandler struct {
	uowFactory PrizeUoWFactory
}

func NewCreatePrizeCommandHandler(uowFactory PrizeUoWFactory) CreatePrizeCommandHandler {
	return CreatePrizeCommandHandler{uowFactory: uowFactory}
}

func (h CreatePrizeCommandHandler) Handle(ctx context.Context, cmd CreatePrizeCommand) (*prize.Prize, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.actor.Role() != kernel.RoleOwner {
		return nil, errs.NewForbiddenError(cmd.actor.String(), "configure prizes")
	}

	p, err := prize.NewPrize(cmd.prizeID, cmd.definition, cmd.weight, cmd.color)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PrizeRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
