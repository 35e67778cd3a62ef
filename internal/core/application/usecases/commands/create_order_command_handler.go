package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// CreateOrderCommandHandler persists a manually keyed order and, when a courier
// was named, dispatches it in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	assigner    services.OrderAssigner
	deliveryFee kernel.Money
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	assigner services.OrderAssigner,
	deliveryFee kernel.Money,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		assigner:    assigner,
		deliveryFee: deliveryFee,
	}
}

// Handle creates the order in Pending (or Assigned when dispatched) and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireManagerOrProvider(cmd.Actor(), "create orders"); err != nil {
		return nil, err
	}

	now := time.Now()
	o, err := order.NewOrder(cmd.OrderID(), cmd.Draft(h.deliveryFee), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if courierID := cmd.CourierID(); courierID != nil {
		c, getErr := uow.CourierRepository().Get(ctx, *courierID)
		if getErr != nil {
			return nil, getErr
		}
		if err = h.assigner.Assign(cmd.Actor(), o, c, now); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
