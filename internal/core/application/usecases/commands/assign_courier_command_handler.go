package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// AssignCourierCommandHandler loads the order and the courier in one
// transaction and lets OrderAssigner decide whether the dispatch is allowed.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, services.NewOrderAssigner(scope))
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // courier or order outside the actor's team
//	case errors.Is(err, services.ErrCourierIsUnavailable):
//	    // courier is off shift
//	case errors.Is(err, errs.ErrConflict):
//	    // order is already delivered or cancelled
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.OrderAssigner
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory, assigner services.OrderAssigner) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
	}
}

func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = h.assigner.Assign(cmd.Actor(), o, c, time.Now()); err != nil {
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
