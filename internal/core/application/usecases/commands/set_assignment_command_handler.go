package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// SetAssignmentCommandHandler edits the assignment registry. A no-op request
// succeeds without writing; a real change makes live subscribers recompute
// their visible couriers.
type SetAssignmentCommandHandler struct {
	uowFactory CourierUoWFactory
	scope      services.ScopeResolver
	fleet      ports.FleetNotifier
}

func NewSetAssignmentCommandHandler(
	uowFactory CourierUoWFactory,
	scope services.ScopeResolver,
	fleet ports.FleetNotifier,
) SetAssignmentCommandHandler {
	return SetAssignmentCommandHandler{uowFactory: uowFactory, scope: scope, fleet: fleet}
}

func (h SetAssignmentCommandHandler) Handle(ctx context.Context, cmd SetAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.scope.CanManageRegistry(cmd.Actor()) {
		return errs.NewForbiddenError(cmd.Actor().String(), "edit courier assignments")
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

	var changed bool
	switch cmd.Action() {
	case AssignmentAdd:
		changed, err = c.AssignSupervisor(cmd.SupervisorID(), time.Now())
	case AssignmentRemove:
		changed, err = c.UnassignSupervisor(cmd.SupervisorID())
	}
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

	h.fleet.ScopesChanged()
	return nil
}
