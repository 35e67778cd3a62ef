package guard_test

import (
	"errors"
	"sync"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("grant must be created via NewGrant")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errMoneyNotConstructed := errors.New("money must be created via NewMoney")

	type money struct {
		amount int64
		guard  guard.ConstructorGuard
	}

	newMoney := func(amount int64) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		return money{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		m, err := newMoney(500)
		require.NoError(t, err)
		require.NoError(t, m.guard.Validate(errMoneyNotConstructed))
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		m := money{amount: 500}
		require.ErrorIs(t, m.guard.Validate(errMoneyNotConstructed), errMoneyNotConstructed)
	})

	t.Run("copies_keep_the_flag", func(t *testing.T) {
		m, err := newMoney(1)
		require.NoError(t, err)
		cp := m
		require.NoError(t, cp.guard.Validate(errMoneyNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
