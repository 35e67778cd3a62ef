package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies an edit to an order in the actor's scope.
// Terminal orders are refused with a ConflictError naming the current status.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	scope      services.ScopeResolver
	assigner   services.OrderAssigner
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	scope services.ScopeResolver,
	assigner services.OrderAssigner,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, scope: scope, assigner: assigner}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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
	if !h.scope.CanEditOrder(cmd.Actor(), o) {
		return nil, errs.NewForbiddenError(cmd.Actor().String(), "edit order "+o.ID().String())
	}

	patch := cmd.Patch()
	if patch.CourierID != nil {
		c, getErr := uow.CourierRepository().Get(ctx, *patch.CourierID)
		if getErr != nil {
			return nil, getErr
		}
		if err = h.assigner.CheckReassign(cmd.Actor(), o, c); err != nil {
			return nil, err
		}
	}

	if err = o.Edit(patch, time.Now()); err != nil {
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
