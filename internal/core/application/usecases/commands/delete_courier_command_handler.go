package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// DeleteCourierCommandHandler retires a courier. Once committed the courier is
// evicted from every live view and subscribers recompute their scope.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	scope      services.ScopeResolver
	fleet      ports.FleetNotifier
}

func NewDeleteCourierCommandHandler(
	uowFactory CourierUoWFactory,
	scope services.ScopeResolver,
	fleet ports.FleetNotifier,
) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{uowFactory: uowFactory, scope: scope, fleet: fleet}
}

func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.scope.CanManageRegistry(cmd.Actor()) {
		return errs.NewForbiddenError(cmd.Actor().String(), "delete couriers")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.SoftDelete(time.Now()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.fleet.CourierRemoved(c.ID())
	h.fleet.ScopesChanged()
	return nil
}
