package fleet_test

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace/internal/core/application/fleet"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePing(t *testing.T) {
	ping, err := fleet.DecodePing([]byte(`{"v":1,"type":"location","payload":{"lat":24.7,"lng":46.6,"heading":90,"timestamp":"2026-03-02T10:00:00Z"}}`))
	require.NoError(t, err)
	assert.InDelta(t, 24.7, ping.Lat, 1e-9)
	assert.InDelta(t, 46.6, ping.Lng, 1e-9)
	require.NotNil(t, ping.Heading)
	assert.InDelta(t, 90.0, *ping.Heading, 1e-9)
	assert.Nil(t, ping.Speed)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), ping.Timestamp)
}

func TestDecodePing_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", `location`, errs.ErrValueIsInvalid},
		{"unknown version", `{"v":2,"type":"location","payload":{}}`, errs.ErrVersionIsInvalid},
		{"missing version", `{"type":"location","payload":{}}`, errs.ErrVersionIsInvalid},
		{"outbound type", `{"v":1,"type":"snapshot","payload":{}}`, errs.ErrValueIsInvalid},
		{"bad payload", `{"v":1,"type":"location","payload":{"lat":"north"}}`, errs.ErrValueIsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fleet.DecodePing([]byte(tt.raw))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFrame_JSONShape(t *testing.T) {
	raw, err := json.Marshal(fleet.NewErrorFrame("bad frame"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"type":"error","payload":{"message":"bad frame"}}`, string(raw))
}
