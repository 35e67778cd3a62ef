package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByBundle(ctx context.Context, bundleID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int64), args.Error(1)
}

type MockPrizeRepository struct{ mock.Mock }

func (m *MockPrizeRepository) Add(ctx context.Context, p *prize.Prize) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrizeRepository) Update(ctx context.Context, p *prize.Prize) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPrizeRepository) Get(ctx context.Context, id kernel.UUID) (*prize.Prize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prize.Prize), args.Error(1)
}

func (m *MockPrizeRepository) GetAll(ctx context.Context) ([]*prize.Prize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*prize.Prize), args.Error(1)
}

type MockGrantRepository struct{ mock.Mock }

func (m *MockGrantRepository) Add(ctx context.Context, g *prize.Grant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGrantRepository) Get(ctx context.Context, id kernel.UUID) (*prize.Grant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prize.Grant), args.Error(1)
}

func (m *MockGrantRepository) Redeem(ctx context.Context, g *prize.Grant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGrantRepository) GetByUser(ctx context.Context, userID kernel.UUID) ([]*prize.Grant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*prize.Grant), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) PrizeRepository() ports.PrizeRepository {
	args := m.Called()
	return args.Get(0).(ports.PrizeRepository)
}

func (m *MockUoW) GrantRepository() ports.GrantRepository {
	args := m.Called()
	return args.Get(0).(ports.GrantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockPrizeUoWFactory struct{ mock.Mock }

func (m *MockPrizeUoWFactory) Create() commands.PrizeUoW {
	args := m.Called()
	return args.Get(0).(commands.PrizeUoW)
}

type MockFleetNotifier struct{ mock.Mock }

func (m *MockFleetNotifier) AvailabilityChanged(courierID kernel.UUID, available bool) {
	m.Called(courierID, available)
}

func (m *MockFleetNotifier) CourierRemoved(courierID kernel.UUID) {
	m.Called(courierID)
}

func (m *MockFleetNotifier) ScopesChanged() {
	m.Called()
}

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func newCourier(t *testing.T, available bool, supervisors ...kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Omar", "+966500000001", testNow)
	require.NoError(t, err)
	_, err = c.SetAvailability(available)
	require.NoError(t, err)
	for _, s := range supervisors {
		_, err = c.AssignSupervisor(s, testNow)
		require.NoError(t, err)
	}
	return c
}

func newOrder(t *testing.T, origin order.Origin, providerID *kernel.UUID) *order.Order {
	t.Helper()
	contact, err := order.NewContact("Sara", "+966500000003", "Olaya St 5")
	require.NoError(t, err)
	item, err := order.NewLineItem("Coffee", 2, 1500, providerID)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		ProviderID:  providerID,
		Contact:     contact,
		Items:       []order.LineItem{item},
		DeliveryFee: 1000,
		Origin:      origin,
	}, testNow)
	require.NoError(t, err)
	return o
}

func contactInput() commands.ContactInput {
	return commands.ContactInput{Name: "Sara", Phone: "+966 50 000 0003", Address: "Olaya St 5"}
}
