package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	customer  kernel.Actor
	providerA kernel.UUID
	providerB kernel.UUID
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	return checkoutFixture{
		customer:  newActor(t, kernel.RoleCustomer),
		providerA: kernel.NewUUID(),
		providerB: kernel.NewUUID(),
	}
}

func (f checkoutFixture) command(t *testing.T, grantID *kernel.UUID) commands.CheckoutCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutCommand(f.customer, kernel.NewUUID(), commands.CheckoutInput{
		Lines: []commands.CartLineInput{
			{ProviderID: f.providerA, Name: "Burger", Quantity: 2, UnitPrice: 1500},
			{ProviderID: f.providerB, Name: "Juice", Quantity: 1, UnitPrice: 2000},
		},
		Contact: contactInput(),
		GrantID: grantID,
	})
	require.NoError(t, err)
	return cmd
}

func (f checkoutFixture) grant(t *testing.T, def prize.Definition, owner kernel.UUID) *prize.Grant {
	t.Helper()
	p, err := prize.NewPrize(kernel.NewUUID(), def, 1, "#ffaa00")
	require.NoError(t, err)
	g, err := prize.NewGrant(kernel.NewUUID(), p, owner, testNow)
	require.NoError(t, err)
	return g
}

func newCheckoutHandler(factory commands.CheckoutUoWFactory) commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(factory, services.NewBundleSplitter(1000), 5*time.Second)
}

func TestCheckoutCommandHandler_Handle_SplitsByProvider(t *testing.T) {
	f := newCheckoutFixture(t)
	cmd := f.command(t, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	bundle, err := newCheckoutHandler(factory).Handle(t.Context(), cmd)

	require.NoError(t, err)
	require.Len(t, bundle.Orders, 2)
	assert.Equal(t, cmd.BundleID(), bundle.ID)

	first, second := bundle.Orders[0], bundle.Orders[1]
	assert.Equal(t, f.providerA, *first.ProviderID())
	assert.Equal(t, f.providerB, *second.ProviderID())
	for _, o := range bundle.Orders {
		assert.Equal(t, cmd.BundleID(), *o.BundleID())
		assert.Equal(t, f.customer.ID(), *o.CustomerID())
		assert.Equal(t, order.OriginCustomerChannel, o.Origin())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.GrantID())
	}
	assert.Equal(t, kernel.Money(4000), first.Payable())
	assert.Equal(t, kernel.Money(3000), second.Payable())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RedeemsGlobalGrant(t *testing.T) {
	f := newCheckoutFixture(t)
	g := f.grant(t, prize.Definition{Name: "10% off", Type: prize.TypePercentDiscount, Value: 10}, f.customer.ID())
	grantID := g.ID()
	cmd := f.command(t, &grantID)

	orderRepo := new(MockOrderRepository)
	grantRepo := new(MockGrantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("GrantRepository").Return(grantRepo).Once(),
		grantRepo.On("Get", mock.Anything, grantID).Return(g, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("GrantRepository").Return(grantRepo).Once(),
		grantRepo.On("Redeem", mock.Anything, g).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	bundle, err := newCheckoutHandler(factory).Handle(t.Context(), cmd)

	require.NoError(t, err)
	require.Len(t, bundle.Orders, 2)
	assert.Equal(t, kernel.Money(300), bundle.Orders[0].Discount())
	assert.Equal(t, kernel.Money(200), bundle.Orders[1].Discount())
	for _, o := range bundle.Orders {
		assert.Equal(t, grantID, *o.GrantID())
	}
	assert.True(t, g.IsRedeemed())
	assert.Equal(t, cmd.BundleID(), *g.BundleID())

	uow.AssertExpectations(t)
	grantRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RollsBackWholeBundle(t *testing.T) {
	f := newCheckoutFixture(t)
	cmd := f.command(t, nil)
	dbErr := errors.New("duplicate key")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(dbErr).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	bundle, err := newCheckoutHandler(factory).Handle(t.Context(), cmd)

	require.Nil(t, bundle)
	require.ErrorIs(t, err, errs.ErrBundleRolledBack)
	require.ErrorIs(t, err, dbErr)

	var rollback *errs.BundleRollbackError
	require.ErrorAs(t, err, &rollback)
	assert.Equal(t, cmd.BundleID().String(), rollback.BundleID)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_GrantProblems(t *testing.T) {
	tests := []struct {
		name    string
		grant   func(t *testing.T, f checkoutFixture) *prize.Grant
		wantErr error
	}{
		{
			name: "grant of another user",
			grant: func(t *testing.T, f checkoutFixture) *prize.Grant {
				return f.grant(t, prize.Definition{Name: "Free delivery", Type: prize.TypeFreeDelivery}, kernel.NewUUID())
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "grant already redeemed",
			grant: func(t *testing.T, f checkoutFixture) *prize.Grant {
				g := f.grant(t, prize.Definition{Name: "Free delivery", Type: prize.TypeFreeDelivery}, f.customer.ID())
				require.NoError(t, g.Redeem(kernel.NewUUID(), testNow))
				return g
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "grant scoped to a provider missing from the cart",
			grant: func(t *testing.T, f checkoutFixture) *prize.Grant {
				elsewhere := kernel.NewUUID()
				return f.grant(t, prize.Definition{
					Name: "5 off", Type: prize.TypeFlatDiscount, Value: 500, ProviderID: &elsewhere,
				}, f.customer.ID())
			},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			g := tt.grant(t, f)
			grantID := g.ID()
			cmd := f.command(t, &grantID)

			grantRepo := new(MockGrantRepository)
			uow := new(MockUoW)

			mock.InOrder(
				uow.On("Begin", mock.Anything).Return(nil).Once(),
				uow.On("GrantRepository").Return(grantRepo).Once(),
				grantRepo.On("Get", mock.Anything, grantID).Return(g, nil).Once(),
				uow.On("Rollback", mock.Anything).Return(nil).Once(),
			)

			factory := new(MockCheckoutUoWFactory)
			factory.On("Create").Return(uow).Once()

			_, err := newCheckoutHandler(factory).Handle(t.Context(), cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, errs.ErrBundleRolledBack)
			grantRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}

func TestCheckoutCommandHandler_Handle_OnlyCustomers(t *testing.T) {
	f := newCheckoutFixture(t)
	f.customer = newActor(t, kernel.RoleCourier)
	cmd := f.command(t, nil)

	factory := new(MockCheckoutUoWFactory)
	_, err := newCheckoutHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCheckoutCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCheckoutCommand(newActor(t, kernel.RoleCustomer), kernel.NewUUID(), commands.CheckoutInput{
		Contact: contactInput(),
	})
	require.ErrorIs(t, err, services.ErrCartIsEmpty)
}
