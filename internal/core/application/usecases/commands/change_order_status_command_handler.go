package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler checks the role matrix, then lets the order
// decide whether the transition is legal. Illegal transitions come back as
// errs.ConflictError carrying the current status so the caller can re-read.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	scope      services.ScopeResolver
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, scope services.ScopeResolver) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory, scope: scope}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.scope.AuthorizeTransition(cmd.Actor(), o, cmd.Status()); err != nil {
		return nil, err
	}

	if err = o.Transition(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
