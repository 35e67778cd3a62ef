package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	owner := newActor(t, kernel.RoleOwner)
	items := []commands.ItemInput{{Name: "Shawarma", Quantity: 2, UnitPrice: 1500}}

	t.Run("valid input", func(t *testing.T) {
		fee := int64(700)
		cmd, err := commands.NewCreateOrderCommand(owner, kernel.NewUUID(), commands.CreateOrderInput{
			Contact:     contactInput(),
			Items:       items,
			DeliveryFee: &fee,
		})
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		draft := cmd.Draft(1000)
		assert.Equal(t, kernel.Money(700), draft.DeliveryFee)
		assert.Equal(t, order.OriginManual, draft.Origin)
		assert.Equal(t, "+966500000003", draft.Contact.Phone())
	})

	t.Run("default fee applies when none given", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(owner, kernel.NewUUID(), commands.CreateOrderInput{
			Contact: contactInput(),
			Items:   items,
		})
		require.NoError(t, err)
		assert.Equal(t, kernel.Money(1000), cmd.Draft(1000).DeliveryFee)
	})

	t.Run("provider is forced to itself", func(t *testing.T) {
		provider := newActor(t, kernel.RoleProvider)
		other := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(provider, kernel.NewUUID(), commands.CreateOrderInput{
			Contact:    contactInput(),
			Items:      items,
			ProviderID: &other,
		})
		require.NoError(t, err)
		require.NotNil(t, cmd.Draft(0).ProviderID)
		assert.Equal(t, provider.ID(), *cmd.Draft(0).ProviderID)
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(owner, kernel.NewUUID(), commands.CreateOrderInput{
			Contact: contactInput(),
		})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(owner, kernel.NewUUID(), commands.CreateOrderInput{
			Contact: commands.ContactInput{Name: "", Phone: "abc", Address: "x"},
			Items:   []commands.ItemInput{{Name: "Tea", Quantity: 0, UnitPrice: 100}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
