package services_test

import (
	"math/rand/v2"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedPrize(t *testing.T, name string, weight float64) *prize.Prize {
	t.Helper()
	p, err := prize.NewPrize(kernel.NewUUID(), prize.Definition{
		Name:  name,
		Type:  prize.TypeFlatDiscount,
		Value: 100,
	}, weight, "")
	require.NoError(t, err)
	return p
}

func TestPrizeSelector_Select(t *testing.T) {
	t.Run("frequencies converge to the weights", func(t *testing.T) {
		selector := services.NewPrizeSelector(rand.New(rand.NewPCG(7, 11)))
		a := weightedPrize(t, "A", 10)
		b := weightedPrize(t, "B", 30)
		c := weightedPrize(t, "C", 60)
		prizes := []*prize.Prize{a, b, c}

		const spins = 20000
		counts := map[kernel.UUID]int{}
		for range spins {
			p, err := selector.Select(prizes)
			require.NoError(t, err)
			counts[p.ID()]++
		}

		assert.InDelta(t, 0.10, float64(counts[a.ID()])/spins, 0.02)
		assert.InDelta(t, 0.30, float64(counts[b.ID()])/spins, 0.02)
		assert.InDelta(t, 0.60, float64(counts[c.ID()])/spins, 0.02)
	})

	t.Run("inactive and zero weight prizes are never drawn", func(t *testing.T) {
		selector := services.NewPrizeSelector(rand.New(rand.NewPCG(1, 2)))
		inactive := weightedPrize(t, "off", 50)
		inactive.SetActive(false)
		zero := weightedPrize(t, "zero", 0)
		only := weightedPrize(t, "only", 0.5)

		for range 500 {
			p, err := selector.Select([]*prize.Prize{inactive, zero, only})
			require.NoError(t, err)
			assert.Equal(t, only.ID(), p.ID())
		}
	})

	t.Run("nothing drawable", func(t *testing.T) {
		selector := services.NewPrizeSelector(rand.New(rand.NewPCG(1, 2)))

		_, err := selector.Select([]*prize.Prize{weightedPrize(t, "zero", 0)})
		require.ErrorIs(t, err, prize.ErrNoPrizesConfigured)

		_, err = selector.Select(nil)
		require.ErrorIs(t, err, prize.ErrNoPrizesConfigured)
	})
}
