package courier

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed indicates that the Assignment was not built by
// NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment is the (supervisor, courier) pair of the assignment registry, owned by
// the courier side. Two assignments are equal when they point at the same supervisor.
type Assignment struct {
	id           kernel.UUID
	supervisorID kernel.UUID
	assignedAt   time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment to supervisorID stamped with now.
func NewAssignment(id, supervisorID kernel.UUID, now time.Time) (*Assignment, error) {
	return RestoreAssignment(id, supervisorID, now)
}

// RestoreAssignment rebuilds a persisted assignment.
func RestoreAssignment(id, supervisorID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		assignedAt: assignedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setID(id), a.setSupervisorID(supervisorID)); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Assignment) ID() kernel.UUID {
	return a.id
}

func (a *Assignment) SupervisorID() kernel.UUID {
	return a.supervisorID
}

func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// IsFor reports whether the assignment links to supervisorID.
func (a *Assignment) IsFor(supervisorID kernel.UUID) bool {
	return a.supervisorID.IsEqual(supervisorID)
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setSupervisorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.supervisorID = id
	return nil
}
