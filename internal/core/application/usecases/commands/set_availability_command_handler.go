package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// SetAvailabilityCommandHandler persists the availability flag. Going off shift
// evicts the courier from live views immediately instead of waiting for its last
// ping to go stale.
type SetAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
	scope      services.ScopeResolver
	fleet      ports.FleetNotifier
}

func NewSetAvailabilityCommandHandler(
	uowFactory CourierUoWFactory,
	scope services.ScopeResolver,
	fleet ports.FleetNotifier,
) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{uowFactory: uowFactory, scope: scope, fleet: fleet}
}

func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) error {
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

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !h.scope.CanSetAvailability(cmd.Actor(), c) {
		return errs.NewForbiddenError(cmd.Actor().String(), "change availability of courier "+c.ID().String())
	}

	changed, err := c.SetAvailability(cmd.Available())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.fleet.AvailabilityChanged(c.ID(), c.IsAvailable())
	return nil
}
