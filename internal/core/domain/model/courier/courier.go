package courier

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsInvalid is returned for phone numbers that are not 7 to 15 digits.
	ErrPhoneIsInvalid = errs.NewValueIsInvalidError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsDeleted is returned when mutating a soft-deleted courier.
	ErrCourierIsDeleted = errors.New("courier is deleted")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Courier represents a delivery courier in the fleet.
//
// Business rules:
//   - Courier must have a valid UUID, a non-empty name and a well-formed phone
//   - New couriers start unavailable until they (or a manager) flip availability
//   - The supervisor set has no duplicates; add and remove are idempotent
//   - Soft delete is final: assignments are dropped and availability is forced off
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Omar", "+966500000001")
//	if err != nil {
//	    return err
//	}
//	changed, err := c.AssignSupervisor(supervisorID, time.Now())
type Courier struct {
	id          kernel.UUID
	name        string
	phone       string
	available   bool
	createdAt   time.Time
	deletedAt   *time.Time
	assignments []*Assignment

	guard guard.ConstructorGuard
}

// NewCourier creates an unavailable courier with no supervisors.
func NewCourier(id kernel.UUID, name, phone string, now time.Time) (*Courier, error) {
	c := &Courier{
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name), c.setPhone(phone)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage, including
// its assignments. A deleted courier is restored without assignments.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	available bool,
	createdAt time.Time,
	deletedAt *time.Time,
	assignments []*Assignment,
) (*Courier, error) {
	c := &Courier{
		available: available,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setAssignments(assignments),
	); err != nil {
		return nil, err
	}

	if deletedAt != nil {
		at := deletedAt.UTC()
		c.deletedAt = &at
		c.available = false
		c.assignments = nil
	}

	return c, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

// IsAvailable reports whether the courier currently accepts work and shows on live maps.
func (c *Courier) IsAvailable() bool {
	return c.available
}

func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Courier) DeletedAt() *time.Time {
	return c.deletedAt
}

func (c *Courier) IsDeleted() bool {
	return c.deletedAt != nil
}

// Assignments returns a copy of the supervisor assignments.
func (c *Courier) Assignments() []*Assignment {
	out := make([]*Assignment, len(c.assignments))
	copy(out, c.assignments)
	return out
}

// SupervisorIDs returns the IDs of every supervisor the courier reports to.
func (c *Courier) SupervisorIDs() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(c.assignments))
	for _, a := range c.assignments {
		out = append(out, a.SupervisorID())
	}
	return out
}

// IsSupervisedBy reports whether an assignment to supervisorID exists.
func (c *Courier) IsSupervisedBy(supervisorID kernel.UUID) bool {
	return c.findAssignment(supervisorID) != nil
}

// AssignSupervisor adds the courier to supervisorID's team. It reports whether
// the registry changed; assigning an existing pair returns false and no error.
func (c *Courier) AssignSupervisor(supervisorID kernel.UUID, now time.Time) (bool, error) {
	if c.IsDeleted() {
		return false, ErrCourierIsDeleted
	}
	if err := supervisorID.Validate(); err != nil {
		return false, err
	}
	if c.IsSupervisedBy(supervisorID) {
		return false, nil
	}

	a, err := NewAssignment(kernel.NewUUID(), supervisorID, now)
	if err != nil {
		return false, err
	}

	c.assignments = append(c.assignments, a)
	return true, nil
}

// UnassignSupervisor removes the courier from supervisorID's team. Removing an
// absent pair returns false and no error.
func (c *Courier) UnassignSupervisor(supervisorID kernel.UUID) (bool, error) {
	if err := supervisorID.Validate(); err != nil {
		return false, err
	}

	for i, a := range c.assignments {
		if a.IsFor(supervisorID) {
			c.assignments = append(c.assignments[:i], c.assignments[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// SetAvailability flips the availability flag and reports whether it changed.
func (c *Courier) SetAvailability(available bool) (bool, error) {
	if c.IsDeleted() {
		if !available {
			return false, nil
		}
		return false, ErrCourierIsDeleted
	}
	if c.available == available {
		return false, nil
	}

	c.available = available
	return true, nil
}

// SoftDelete retires the courier. Historical orders keep referencing it; the
// assignments cascade away and the courier goes dark on live maps.
func (c *Courier) SoftDelete(now time.Time) error {
	if c.IsDeleted() {
		return errs.NewConflictError("courier", "deleted", "delete")
	}

	at := now.UTC()
	c.deletedAt = &at
	c.available = false
	c.assignments = nil
	return nil
}

func (c *Courier) findAssignment(supervisorID kernel.UUID) *Assignment {
	for _, a := range c.assignments {
		if a.IsFor(supervisorID) {
			return a
		}
	}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	normalized := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if !phonePattern.MatchString(normalized) {
		return ErrPhoneIsInvalid
	}
	c.phone = normalized
	return nil
}

func (c *Courier) setAssignments(assignments []*Assignment) error {
	seen := make(map[kernel.UUID]struct{}, len(assignments))
	out := make([]*Assignment, 0, len(assignments))
	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.SupervisorID()]; dup {
			continue
		}
		seen[a.SupervisorID()] = struct{}{}
		out = append(out, a)
	}
	c.assignments = out
	return nil
}
