// Package fleet holds the location sample couriers stream to the live map.
package fleet

import (
	"errors"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultStaleness is the age past which a courier is rendered offline.
	DefaultStaleness = 5 * time.Minute
	// DefaultMaxClockSkew is how far past server time a sample may be stamped.
	DefaultMaxClockSkew = 30 * time.Second
)

// ErrPingIsNotConstructed is returned when using a Ping built outside NewPing.
var ErrPingIsNotConstructed = errors.New("Ping must be created via NewPing constructor")

// Ping is one timestamped courier location sample. Pings are never persisted; the
// hub only keeps the latest one per courier.
type Ping struct {
	courierID kernel.UUID
	position  kernel.GeoPoint
	heading   *float64
	speed     *float64
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewPing validates and builds a ping. Heading is degrees in [0, 360); speed is
// non-negative metres per second. Both are optional, and an out-of-range value
// is discarded while the position is kept.
func NewPing(courierID kernel.UUID, lat, lng float64, heading, speed *float64, ts time.Time) (Ping, error) {
	p := Ping{
		timestamp: ts.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	position, posErr := kernel.NewGeoPoint(lat, lng)

	if err := errors.Join(
		courierID.Validate(),
		posErr,
		p.setTimestamp(ts),
	); err != nil {
		return Ping{}, err
	}

	p.setHeading(heading)
	p.setSpeed(speed)

	p.courierID = courierID
	p.position = position
	return p, nil
}

func (p Ping) Validate() error {
	return p.guard.Validate(ErrPingIsNotConstructed)
}

func (p Ping) CourierID() kernel.UUID {
	return p.courierID
}

func (p Ping) Position() kernel.GeoPoint {
	return p.position
}

func (p Ping) Heading() *float64 {
	return p.heading
}

func (p Ping) Speed() *float64 {
	return p.speed
}

func (p Ping) Timestamp() time.Time {
	return p.timestamp
}

// IsOnline is computed at read time: the sample is younger than staleness.
func (p Ping) IsOnline(now time.Time, staleness time.Duration) bool {
	return now.Sub(p.timestamp) < staleness
}

// IsAheadOf reports whether the sample is stamped more than skew past now,
// which only a courier clock running fast produces.
func (p Ping) IsAheadOf(now time.Time, skew time.Duration) bool {
	return p.timestamp.Sub(now) > skew
}

// IsNewerThan reports whether p should replace other as the latest sample.
func (p Ping) IsNewerThan(other Ping) bool {
	return p.timestamp.After(other.timestamp)
}

func (p *Ping) setHeading(heading *float64) {
	if heading == nil {
		return
	}
	h := *heading
	if math.IsNaN(h) || h < 0 || h >= 360 {
		return
	}
	p.heading = &h
}

func (p *Ping) setSpeed(speed *float64) {
	if speed == nil {
		return
	}
	s := *speed
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return
	}
	p.speed = &s
}

func (p *Ping) setTimestamp(ts time.Time) error {
	if ts.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
