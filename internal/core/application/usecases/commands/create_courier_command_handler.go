package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CreateCourierCommandHandler registers couriers. Only owners manage the
// registry. New couriers start unavailable, so the live map is not notified.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	scope      services.ScopeResolver
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, scope services.ScopeResolver) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !h.scope.CanManageRegistry(cmd.Actor()) {
		return nil, errs.NewForbiddenError(cmd.Actor().String(), "register couriers")
	}

	now := time.Now()
	c, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Phone(), now)
	if err != nil {
		return nil, err
	}
	for _, supervisorID := range cmd.SupervisorIDs() {
		if _, err = c.AssignSupervisor(supervisorID, now); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
