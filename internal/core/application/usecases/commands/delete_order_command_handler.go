package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order. Owners and supervisors in scope
// may delete; couriers, providers and customers never can. Delivered and
// cancelled orders are billable history and are refused with a ConflictError.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scope      services.ScopeResolver
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, scope services.ScopeResolver) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, scope: scope}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.scope.CanEditOrder(cmd.Actor(), o) {
		return errs.NewForbiddenError(cmd.Actor().String(), "delete order "+o.ID().String())
	}

	if err = o.MarkDeleted(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
