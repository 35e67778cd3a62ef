package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) (kernel.Actor, *order.Order)
		next    order.Status
		wantErr error
		updated bool
	}{
		{
			name: "courier picks up its own order",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				c := newCourier(t, true)
				o := newOrder(t, order.OriginManual, nil)
				require.NoError(t, o.Assign(c.ID(), nil, testNow))
				actor, err := kernel.NewActor(kernel.RoleCourier, c.ID())
				require.NoError(t, err)
				return actor, o
			},
			next:    order.PickedUp,
			updated: true,
		},
		{
			name: "courier may not cancel",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				c := newCourier(t, true)
				o := newOrder(t, order.OriginManual, nil)
				require.NoError(t, o.Assign(c.ID(), nil, testNow))
				actor, err := kernel.NewActor(kernel.RoleCourier, c.ID())
				require.NoError(t, err)
				return actor, o
			},
			next:    order.Cancelled,
			wantErr: errs.ErrForbidden,
		},
		{
			name: "provider rejects a customer-channel order",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				provider := newActor(t, kernel.RoleProvider)
				id := provider.ID()
				return provider, newOrder(t, order.OriginCustomerChannel, &id)
			},
			next:    order.Cancelled,
			updated: true,
		},
		{
			name: "provider may not reject a manual order",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				provider := newActor(t, kernel.RoleProvider)
				id := provider.ID()
				return provider, newOrder(t, order.OriginManual, &id)
			},
			next:    order.Cancelled,
			wantErr: errs.ErrForbidden,
		},
		{
			name: "owner cannot move backwards",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				o := newOrder(t, order.OriginManual, nil)
				require.NoError(t, o.Assign(kernel.NewUUID(), nil, testNow))
				require.NoError(t, o.Transition(order.InTransit, testNow))
				return newActor(t, kernel.RoleOwner), o
			},
			next:    order.ReadyForPickup,
			wantErr: errs.ErrConflict,
		},
		{
			name: "owner cannot leave pending without a courier",
			setup: func(t *testing.T) (kernel.Actor, *order.Order) {
				return newActor(t, kernel.RoleOwner), newOrder(t, order.OriginManual, nil)
			},
			next:    order.ReadyForPickup,
			wantErr: errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			actor, o := tt.setup(t)

			cmd, err := commands.NewChangeOrderStatusCommand(actor, o.ID(), tt.next)
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)

			calls := []*mock.Call{
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			}
			if tt.updated {
				calls = append(calls,
					orderRepo.On("Update", ctx, o).Return(nil).Once(),
					uow.On("Commit", ctx).Return(nil).Once(),
				)
			}
			calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
			mock.InOrder(calls...)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewChangeOrderStatusCommandHandler(factory, services.NewScopeResolver())
			got, err := handler.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.next, got.Status())
			}
			uow.AssertExpectations(t)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(newActor(t, kernel.RoleOwner), kernel.NewUUID(), order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
