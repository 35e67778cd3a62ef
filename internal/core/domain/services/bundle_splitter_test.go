package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrant(t *testing.T, def prize.Definition) *prize.Grant {
	t.Helper()
	p, err := prize.NewPrize(kernel.NewUUID(), def, 1, "")
	require.NoError(t, err)
	g, err := prize.NewGrant(kernel.NewUUID(), p, kernel.NewUUID(), now)
	require.NoError(t, err)
	return g
}

func TestBundleSplitter_Plan(t *testing.T) {
	p1 := kernel.NewUUID()
	p2 := kernel.NewUUID()
	splitter := services.NewBundleSplitter(1000)

	cart := []services.CartLine{
		{ProviderID: p1, Name: "A", Quantity: 2, UnitPrice: 4000},
		{ProviderID: p2, Name: "B", Quantity: 1, UnitPrice: 2000},
	}

	t.Run("provider scoped percent grant discounts only its provider", func(t *testing.T) {
		grant := newGrant(t, prize.Definition{Name: "15%", Type: prize.TypePercentDiscount, Value: 15, ProviderID: &p1})

		plan, err := splitter.Plan(cart, grant)

		require.NoError(t, err)
		require.True(t, plan.GrantApplicable)
		require.Len(t, plan.Orders, 2)

		first, second := plan.Orders[0], plan.Orders[1]
		assert.Equal(t, p1, first.ProviderID)
		assert.Equal(t, kernel.Money(8000), first.Subtotal)
		assert.Equal(t, kernel.Money(1200), first.Discount)
		assert.Equal(t, kernel.Money(6800), first.Subtotal.Sub(first.Discount))
		assert.True(t, first.GrantApplied)

		assert.Equal(t, p2, second.ProviderID)
		assert.Equal(t, kernel.Money(2000), second.Subtotal)
		assert.Equal(t, kernel.Money(0), second.Discount)
		assert.False(t, second.GrantApplied)
	})

	t.Run("grouping keeps first appearance order and merges lines", func(t *testing.T) {
		plan, err := splitter.Plan([]services.CartLine{
			{ProviderID: p2, Name: "B", Quantity: 1, UnitPrice: 100},
			{ProviderID: p1, Name: "A", Quantity: 1, UnitPrice: 200},
			{ProviderID: p2, Name: "C", Quantity: 3, UnitPrice: 100},
		}, nil)

		require.NoError(t, err)
		require.Len(t, plan.Orders, 2)
		assert.Equal(t, p2, plan.Orders[0].ProviderID)
		assert.Len(t, plan.Orders[0].Items, 2)
		assert.Equal(t, kernel.Money(400), plan.Orders[0].Subtotal)
		assert.Equal(t, kernel.Money(1000), plan.Orders[0].DeliveryFee)
		assert.False(t, plan.GrantApplicable)
	})

	t.Run("scoped grant without matching items is not applicable", func(t *testing.T) {
		stranger := kernel.NewUUID()
		grant := newGrant(t, prize.Definition{Name: "10%", Type: prize.TypePercentDiscount, Value: 10, ProviderID: &stranger})

		plan, err := splitter.Plan(cart, grant)

		require.NoError(t, err)
		assert.False(t, plan.GrantApplicable)
		assert.Equal(t, kernel.Money(0), plan.Discount())
	})

	t.Run("global flat grant is apportioned and sums exactly", func(t *testing.T) {
		grant := newGrant(t, prize.Definition{Name: "flat", Type: prize.TypeFlatDiscount, Value: 1001})

		plan, err := splitter.Plan([]services.CartLine{
			{ProviderID: p1, Name: "A", Quantity: 1, UnitPrice: 1000},
			{ProviderID: p2, Name: "B", Quantity: 1, UnitPrice: 1000},
			{ProviderID: kernel.NewUUID(), Name: "C", Quantity: 1, UnitPrice: 1000},
		}, grant)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(1001), plan.Discount())
		assert.Equal(t, kernel.Money(334), plan.Orders[0].Discount)
		assert.Equal(t, kernel.Money(334), plan.Orders[1].Discount)
		assert.Equal(t, kernel.Money(333), plan.Orders[2].Discount)
	})

	t.Run("flat grant never exceeds the base", func(t *testing.T) {
		grant := newGrant(t, prize.Definition{Name: "flat", Type: prize.TypeFlatDiscount, Value: 50000})

		plan, err := splitter.Plan(cart, grant)

		require.NoError(t, err)
		assert.Equal(t, plan.Subtotal(), plan.Discount())
		for _, o := range plan.Orders {
			assert.Equal(t, o.Subtotal, o.Discount)
		}
	})

	t.Run("global percent grant is proportional", func(t *testing.T) {
		grant := newGrant(t, prize.Definition{Name: "10%", Type: prize.TypePercentDiscount, Value: 10})

		plan, err := splitter.Plan(cart, grant)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(1000), plan.Discount())
		assert.Equal(t, kernel.Money(800), plan.Orders[0].Discount)
		assert.Equal(t, kernel.Money(200), plan.Orders[1].Discount)
	})

	t.Run("free delivery waives the fee of affected orders only", func(t *testing.T) {
		grant := newGrant(t, prize.Definition{Name: "free", Type: prize.TypeFreeDelivery, ProviderID: &p2})

		plan, err := splitter.Plan(cart, grant)

		require.NoError(t, err)
		assert.False(t, plan.Orders[0].DeliveryFeeWaived)
		assert.True(t, plan.Orders[1].DeliveryFeeWaived)
		assert.Equal(t, kernel.Money(0), plan.Discount())
		assert.Equal(t, kernel.Money(9000+2000), plan.Payable())
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := splitter.Plan(nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid lines are reported together", func(t *testing.T) {
		_, err := splitter.Plan([]services.CartLine{
			{ProviderID: p1, Name: "", Quantity: 1, UnitPrice: 100},
			{ProviderID: p1, Name: "X", Quantity: 0, UnitPrice: 100},
		}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
