package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"
)

// UpdatePrizeCommandHandler applies an owner's edit to the prize table.
type UpdatePrizeCommandHandler struct {
	uowFactory PrizeUoWFactory
}

func NewUpdatePrizeCommandHandler(uowFactory PrizeUoWFactory) UpdatePrizeCommandHandler {
	return UpdatePrizeCommandHandler{uowFactory: uowFactory}
}

func (h UpdatePrizeCommandHandler) Handle(ctx context.Context, cmd UpdatePrizeCommand) (*prize.Prize, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.actor.Role() != kernel.RoleOwner {
		return nil, errs.NewForbiddenError(cmd.actor.String(), "configure prizes")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prizeRepo := uow.PrizeRepository()

	p, err := prizeRepo.Get(ctx, cmd.prizeID)
	if err != nil {
		return nil, err
	}

	in := cmd.input
	if err = p.Update(in.Definition, in.Weight, in.Color); err != nil {
		return nil, err
	}
	if in.Active != nil {
		p.SetActive(*in.Active)
	}

	if err = prizeRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
