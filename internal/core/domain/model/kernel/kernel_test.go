package kernel_test

import (
	"math"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should accept coordinates in range", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(24.7136, 46.6753)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 24.7136, p.Lat(), 1e-9)
		assert.InDelta(t, 46.6753, p.Lng(), 1e-9)
	})

	t.Run("should accept the bounds", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-90, 180)
		require.NoError(t, err)
	})

	testCases := []struct {
		name     string
		lat, lng float64
		target   error
	}{
		{"latitude above range", 91, 0, errs.ErrValueIsOutOfRange},
		{"longitude below range", 0, -181, errs.ErrValueIsOutOfRange},
		{"NaN latitude", math.NaN(), 0, errs.ErrValueIsInvalid},
		{"infinite longitude", 0, math.Inf(1), errs.ErrValueIsInvalid},
	}
	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
			require.ErrorIs(t, err, tc.target)
		})
	}

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

func TestMoney(t *testing.T) {
	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("arithmetic", func(t *testing.T) {
		m := kernel.Money(8000)

		assert.Equal(t, kernel.Money(1200), m.Percent(15))
		assert.Equal(t, kernel.Money(0), m.Percent(0))
		assert.Equal(t, kernel.Money(6800), m.Sub(1200))
		assert.Equal(t, kernel.Money(0), m.Sub(9000))
		assert.Equal(t, kernel.Money(16000), m.Mul(2))
		assert.Equal(t, kernel.Money(500), m.Min(500))
		assert.Equal(t, "80.00", m.String())
	})

	t.Run("percent rounds half up", func(t *testing.T) {
		assert.Equal(t, kernel.Money(2), kernel.Money(15).Percent(10))
		assert.Equal(t, kernel.Money(1), kernel.Money(14).Percent(10))
	})
}

func TestRole(t *testing.T) {
	for _, name := range []string{"owner", "supervisor", "courier", "customer", "provider"} {
		t.Run("should parse "+name, func(t *testing.T) {
			r, err := kernel.ParseRole(name)
			require.NoError(t, err)
			require.NoError(t, r.Validate())
			assert.Equal(t, name, r.String())
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := kernel.ParseRole("admin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("managers", func(t *testing.T) {
		assert.True(t, kernel.RoleOwner.IsManager())
		assert.True(t, kernel.RoleSupervisor.IsManager())
		assert.False(t, kernel.RoleCourier.IsManager())
		require.Error(t, kernel.RoleUnknown.Validate())
	})
}

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	a, err := kernel.NewActor(kernel.RoleSupervisor, id)
	require.NoError(t, err)
	require.NoError(t, a.Validate())
	assert.True(t, a.Is(kernel.RoleSupervisor, id))
	assert.False(t, a.Is(kernel.RoleOwner, id))

	_, err = kernel.NewActor(kernel.RoleUnknown, id)
	require.Error(t, err)

	_, err = kernel.NewActor(kernel.RoleOwner, kernel.UUID{})
	require.Error(t, err)

	var zero kernel.Actor
	require.ErrorIs(t, zero.Validate(), kernel.ErrActorIsNotConstructed)
}
