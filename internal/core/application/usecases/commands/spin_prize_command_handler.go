package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
)

// SpinPrizeCommandHandler draws from the active prize table and records exactly
// one grant for the spinning user. An empty table fails with
// prize.ErrNoPrizesConfigured rather than returning a placeholder.
type SpinPrizeCommandHandler struct {
	uowFactory PrizeUoWFactory
	selector   *services.PrizeSelector
}

func NewSpinPrizeCommandHandler(uowFactory PrizeUoWFactory, selector *services.PrizeSelector) SpinPrizeCommandHandler {
	return SpinPrizeCommandHandler{uowFactory: uowFactory, selector: selector}
}

func (h SpinPrizeCommandHandler) Handle(ctx context.Context, cmd SpinPrizeCommand) (*prize.Grant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prizes, err := uow.PrizeRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	won, err := h.selector.Select(prizes)
	if err != nil {
		return nil, err
	}

	grant, err := prize.NewGrant(cmd.GrantID(), won, cmd.Actor().ID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.GrantRepository().Add(ctx, grant); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return grant, nil
}
