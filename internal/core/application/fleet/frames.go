// Package fleet is the live location hub. It keeps the latest ping of every
// available courier in memory and fans positions out to subscribers, each of
// which only ever receives couriers inside its actor's scope.
package fleet

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// FrameVersion is written on every frame sent to live subscribers.
const FrameVersion = 1

type FrameType string

const (
	FrameLocation FrameType = "location"
	FrameEvicted  FrameType = "evicted"
	FramePresence FrameType = "presence"
	FrameSnapshot FrameType = "snapshot"
	FrameError    FrameType = "error"
)

// Frame is the versioned envelope pushed on the live channel.
type Frame struct {
	V       int       `json:"v"`
	Type    FrameType `json:"type"`
	Payload any       `json:"payload"`
}

func newFrame(t FrameType, payload any) Frame {
	return Frame{V: FrameVersion, Type: t, Payload: payload}
}

// NewErrorFrame reports a rejected inbound frame back to its sender.
func NewErrorFrame(message string) Frame {
	return newFrame(FrameError, ErrorPayload{Message: message})
}

// Location is a courier's latest position. Online is computed when the value is
// produced, never stored.
type Location struct {
	CourierID kernel.UUID `json:"courierId"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	Heading   *float64    `json:"heading,omitempty"`
	Speed     *float64    `json:"speed,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Online    bool        `json:"online"`
}

// Eviction reasons.
const (
	ReasonUnavailable = "unavailable"
	ReasonOffline     = "offline"
	ReasonRemoved     = "removed"
	ReasonOutOfScope  = "out_of_scope"
)

type EvictedPayload struct {
	CourierID kernel.UUID `json:"courierId"`
	Reason    string      `json:"reason"`
}

type PresencePayload struct {
	CourierID kernel.UUID `json:"courierId"`
	Online    bool        `json:"online"`
	LastSeen  time.Time   `json:"lastSeen"`
}

type SnapshotPayload struct {
	Couriers []Location `json:"couriers"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// PingInput is an inbound location sample before validation.
type PingInput struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Heading   *float64  `json:"heading,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type inboundFrame struct {
	V       int             `json:"v"`
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodePing validates an inbound location frame. Only version 1 location
// frames are accepted; the sample itself is validated on ingestion.
func DecodePing(raw []byte) (PingInput, error) {
	var in inboundFrame
	if err := json.Unmarshal(raw, &in); err != nil {
		return PingInput{}, errs.NewValueIsInvalidErrorWithCause("frame", err)
	}
	if in.V != FrameVersion {
		return PingInput{}, errs.NewVersionIsInvalidError("frame", fmt.Errorf("version %d is not supported", in.V))
	}
	if in.Type != FrameLocation {
		return PingInput{}, errs.NewValueIsInvalidErrorWithCause("frame type", fmt.Errorf("%q frames are not accepted", in.Type))
	}

	var ping PingInput
	if err := json.Unmarshal(in.Payload, &ping); err != nil {
		return PingInput{}, errs.NewValueIsInvalidErrorWithCause("location payload", err)
	}
	return ping, nil
}
