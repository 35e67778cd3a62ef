package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> ReadyForPickup ──> PickedUp ──> InTransit ──> Delivered
//	   │           │               │               │             │
//	   └───────────┴───────────────┴───────────────┴─────────────┴──────> Cancelled
//
// Transitions only move forward along the happy path (skipping steps is allowed),
// every non-terminal status may escape to Cancelled, and Delivered and Cancelled are
// terminal. Every status after Pending requires an assigned courier.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// Assigned means a courier was dispatched to the order.
	Assigned

	// ReadyForPickup means the provider has the order ready for the courier.
	ReadyForPickup

	// PickedUp means the courier collected the order.
	PickedUp

	// InTransit means the courier is on the way to the customer.
	InTransit

	// Delivered is terminal and billable.
	Delivered

	// Cancelled is terminal; reachable from any non-terminal status.
	Cancelled
)

// happyPath lists the forward statuses in order; the index is the rank.
var happyPath = []Status{Pending, Assigned, ReadyForPickup, PickedUp, InTransit, Delivered}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Assigned:       "assigned",
		ReadyForPickup: "ready_for_pickup",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// ParseStatus maps a wire name such as "ready_for_pickup" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the seven defined states.
func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, ReadyForPickup, PickedUp, InTransit, Delivered, Cancelled:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresCourier reports whether an order in this status must carry a courier.
func (s Status) RequiresCourier() bool {
	switch s {
	case Assigned, ReadyForPickup, PickedUp, InTransit, Delivered:
		return true
	case Unknown, Pending, Cancelled:
		return false
	}
	return false
}

// Group returns the operational phase dashboards use to bucket orders:
// "waiting" for {pending, assigned}, "preparing" for ready_for_pickup,
// "delivering" for {picked_up, in_transit} and "closed" for terminal statuses.
func (s Status) Group() string {
	switch s {
	case Pending, Assigned:
		return "waiting"
	case ReadyForPickup:
		return "preparing"
	case PickedUp, InTransit:
		return "delivering"
	case Delivered, Cancelled:
		return "closed"
	case Unknown:
	}
	return "unknown"
}

// NextStatuses returns every status reachable from s in one transition.
// Terminal and invalid statuses have none.
func (s Status) NextStatuses() []Status {
	if s.Validate() != nil || s.IsTerminal() {
		return nil
	}

	next := make([]Status, 0, len(happyPath))
	for _, candidate := range happyPath {
		if candidate.rank() > s.rank() {
			next = append(next, candidate)
		}
	}
	return append(next, Cancelled)
}

// ValidateTransition checks that s may move to next. Failures are ConflictErrors
// naming the current and the requested status.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, candidate := range s.NextStatuses() {
		if candidate == next {
			return nil
		}
	}

	return errs.NewConflictError("order status", s.String(), next.String())
}

func (s Status) rank() int {
	for i, candidate := range happyPath {
		if candidate == s {
			return i
		}
	}
	return -1
}
