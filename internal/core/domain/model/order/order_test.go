package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validContact(t *testing.T) order.Contact {
	t.Helper()
	c, err := order.NewContact("Sara", "+966 500-000-000", "King Fahd Rd 12")
	require.NoError(t, err)
	return c
}

func validItem(t *testing.T, name string, qty int, price kernel.Money) order.LineItem {
	t.Helper()
	providerID := kernel.NewUUID()
	item, err := order.NewLineItem(name, qty, price, &providerID)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, origin order.Origin) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
		Contact:     validContact(t),
		Items:       []order.LineItem{validItem(t, "Falafel", 2, 4000)},
		DeliveryFee: 1000,
		Origin:      origin,
	}, now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start pending with a created event", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.False(t, o.IsEdited())
		assert.Equal(t, kernel.Money(8000), o.Subtotal())
		assert.Equal(t, kernel.Money(9000), o.Payable())
		require.Len(t, o.Events(), 1)
		assert.Equal(t, order.EventCreated, o.Events()[0].Type)
	})

	t.Run("should require items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			Contact: validContact(t),
			Origin:  order.OriginManual,
		}, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a discount above the subtotal", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			Contact:  validContact(t),
			Items:    []order.LineItem{validItem(t, "Tea", 1, 500)},
			Discount: 600,
			Origin:   order.OriginManual,
		}, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a zero-value contact", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			Items:  []order.LineItem{validItem(t, "Tea", 1, 500)},
			Origin: order.OriginManual,
		}, now)

		require.ErrorIs(t, err, order.ErrContactIsNotConstructed)
	})

	t.Run("payable skips a waived delivery fee", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			Contact:           validContact(t),
			Items:             []order.LineItem{validItem(t, "Tea", 2, 500)},
			DeliveryFee:       1000,
			DeliveryFeeWaived: true,
			Discount:          200,
			Origin:            order.OriginCustomerChannel,
		}, now)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(800), o.Payable())
	})
}

func TestNewContact(t *testing.T) {
	t.Run("should normalise the phone", func(t *testing.T) {
		c := validContact(t)
		assert.Equal(t, "+966500000000", c.Phone())
	})

	t.Run("should reject malformed phone and empty address", func(t *testing.T) {
		_, err := order.NewContact("Sara", "call me", " ")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "delivery address")
	})
}

func TestOrder_Assign(t *testing.T) {
	courierID := kernel.NewUUID()
	supervisorID := kernel.NewUUID()

	t.Run("pending order becomes assigned", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)

		require.NoError(t, o.Assign(courierID, &supervisorID, now))

		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, courierID, *o.Courier())
		assert.Equal(t, supervisorID, *o.Supervisor())
		assert.False(t, o.IsEdited())
	})

	t.Run("reassignment keeps the status and attribution", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		require.NoError(t, o.Assign(courierID, &supervisorID, now))
		require.NoError(t, o.Transition(order.PickedUp, now))

		other := kernel.NewUUID()
		require.NoError(t, o.Assign(other, nil, now))

		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, other, *o.Courier())
		assert.Equal(t, supervisorID, *o.Supervisor())
		assert.True(t, o.IsEdited())
	})

	t.Run("terminal order cannot be assigned", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		require.NoError(t, o.Cancel(now))

		err := o.Assign(courierID, nil, now)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("happy path to delivered", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)
		require.NoError(t, o.Assign(kernel.NewUUID(), nil, now))

		for _, next := range []order.Status{order.ReadyForPickup, order.PickedUp, order.InTransit, order.Delivered} {
			require.NoError(t, o.Transition(next, now))
		}
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("courier-bearing statuses need a courier", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)

		err := o.Transition(order.ReadyForPickup, now)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "pending", conflict.Current)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("backward transition is rejected", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)
		require.NoError(t, o.Assign(kernel.NewUUID(), nil, now))
		require.NoError(t, o.Transition(order.InTransit, now))

		err := o.Transition(order.Assigned, now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.InTransit, o.Status())
	})

	t.Run("cancel from any non-terminal status", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)
		require.NoError(t, o.Cancel(now))
		assert.Equal(t, order.Cancelled, o.Status())

		require.ErrorIs(t, o.Cancel(now), errs.ErrConflict)
	})

	t.Run("records status change events", func(t *testing.T) {
		o := newTestOrder(t, order.OriginCustomerChannel)
		o.ClearEvents()
		require.NoError(t, o.Assign(kernel.NewUUID(), nil, now))

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventStatusChanged, events[0].Type)
		assert.Equal(t, order.Pending, events[0].PreviousStatus)
		assert.Equal(t, order.Assigned, events[0].Status)
	})
}

func TestOrder_Edit(t *testing.T) {
	t.Run("edit marks the order edited and keeps the status", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		require.NoError(t, o.Assign(kernel.NewUUID(), nil, now))
		fee := kernel.Money(0)
		notes := "ring twice"

		err := o.Edit(order.Patch{
			Items:       []order.LineItem{validItem(t, "Kunafa", 1, 2500)},
			DeliveryFee: &fee,
			Notes:       &notes,
		}, now.Add(time.Minute))

		require.NoError(t, err)
		assert.True(t, o.IsEdited())
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, kernel.Money(2500), o.Subtotal())
		assert.Equal(t, "ring twice", o.Notes())
		assert.Equal(t, now.Add(time.Minute), o.UpdatedAt())
	})

	t.Run("terminal order cannot be edited", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		require.NoError(t, o.Cancel(now))
		notes := "late"

		err := o.Edit(order.Patch{Notes: &notes}, now)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "cancelled", conflict.Current)
		assert.False(t, o.IsEdited())
	})

	t.Run("courier change on a pending order goes through assign", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		courierID := kernel.NewUUID()

		err := o.Edit(order.Patch{CourierID: &courierID}, now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, o.Courier())
	})

	t.Run("invalid patch leaves the order untouched", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)

		err := o.Edit(order.Patch{Items: []order.LineItem{}}, now)

		require.Error(t, err)
		assert.False(t, o.IsEdited())
		assert.Equal(t, kernel.Money(8000), o.Subtotal())
	})

	t.Run("discount is capped by a smaller cart", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			Contact:  validContact(t),
			Items:    []order.LineItem{validItem(t, "Tea", 4, 500)},
			Discount: 1500,
			Origin:   order.OriginCustomerChannel,
		}, now)
		require.NoError(t, err)

		require.NoError(t, o.Edit(order.Patch{Items: []order.LineItem{validItem(t, "Tea", 1, 500)}}, now))

		assert.Equal(t, kernel.Money(500), o.Discount())
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		o := newTestOrder(t, order.OriginManual)
		require.ErrorIs(t, o.Edit(order.Patch{}, now), errs.ErrValueIsRequired)
	})
}

func TestOrder_CanRejectAndDelete(t *testing.T) {
	assert.False(t, newTestOrder(t, order.OriginManual).CanReject())
	assert.True(t, newTestOrder(t, order.OriginCustomerChannel).CanReject())

	o := newTestOrder(t, order.OriginManual)
	require.NoError(t, o.MarkDeleted(now))
	assert.Equal(t, order.EventDeleted, o.Events()[len(o.Events())-1].Type)

	require.NoError(t, o.Cancel(now))
	require.ErrorIs(t, o.MarkDeleted(now), errs.ErrConflict)
}

func TestRestoreOrder(t *testing.T) {
	base := order.Snapshot{
		Draft: order.Draft{
			Contact: validContact(t),
			Items:   []order.LineItem{validItem(t, "Tea", 1, 500)},
			Origin:  order.OriginManual,
		},
		ID:        kernel.NewUUID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("pending without courier", func(t *testing.T) {
		s := base
		s.Status = order.Pending

		o, err := order.RestoreOrder(s)

		require.NoError(t, err)
		assert.Empty(t, o.Events())
	})

	t.Run("assigned requires a courier", func(t *testing.T) {
		s := base
		s.Status = order.Assigned

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "to have no courier")
	})

	t.Run("pending cannot carry a courier", func(t *testing.T) {
		s := base
		s.Status = order.Pending
		courierID := kernel.NewUUID()
		s.CourierID = &courierID

		_, err := order.RestoreOrder(s)

		require.Error(t, err)
	})
}
