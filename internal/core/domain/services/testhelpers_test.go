package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func actorWithID(t *testing.T, role kernel.Role, id kernel.UUID) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(role, id)
	require.NoError(t, err)
	return a
}

func newCourier(t *testing.T, available bool, supervisors ...kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Courier", "+966500000002", now)
	require.NoError(t, err)
	_, err = c.SetAvailability(available)
	require.NoError(t, err)
	for _, s := range supervisors {
		_, err = c.AssignSupervisor(s, now)
		require.NoError(t, err)
	}
	return c
}

type orderOpts struct {
	origin     order.Origin
	providerID *kernel.UUID
	customerID *kernel.UUID
}

func newOrder(t *testing.T, opts orderOpts) *order.Order {
	t.Helper()
	contact, err := order.NewContact("Sara", "+966500000003", "Olaya St 5")
	require.NoError(t, err)
	item, err := order.NewLineItem("Coffee", 1, 1500, opts.providerID)
	require.NoError(t, err)
	if opts.origin == "" {
		opts.origin = order.OriginCustomerChannel
	}
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		CustomerID: opts.customerID,
		ProviderID: opts.providerID,
		Contact:    contact,
		Items:      []order.LineItem{item},
		Origin:     opts.origin,
	}, now)
	require.NoError(t, err)
	return o
}
