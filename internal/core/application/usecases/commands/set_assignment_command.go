package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSetAssignmentCommandIsNotConstructed = errors.New(
	"SetAssignmentCommand must be created via NewSetAssignmentCommand constructor",
)

// AssignmentAction is add or remove.
type AssignmentAction string

const (
	AssignmentAdd    AssignmentAction = "add"
	AssignmentRemove AssignmentAction = "remove"
)

// SetAssignmentCommand adds or removes a (supervisor, courier) pair. Both
// directions are idempotent.
type SetAssignmentCommand struct {
	actor        kernel.Actor
	courierID    kernel.UUID
	supervisorID kernel.UUID
	action       AssignmentAction

	guard guard.ConstructorGuard
}

func NewSetAssignmentCommand(
	actor kernel.Actor,
	courierID, supervisorID kernel.UUID,
	action AssignmentAction,
) (SetAssignmentCommand, error) {
	var actionErr error
	if action != AssignmentAdd && action != AssignmentRemove {
		actionErr = errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is neither add nor remove", string(action)))
	}

	if err := errors.Join(actor.Validate(), courierID.Validate(), supervisorID.Validate(), actionErr); err != nil {
		return SetAssignmentCommand{}, err
	}

	return SetAssignmentCommand{
		actor:        actor,
		courierID:    courierID,
		supervisorID: supervisorID,
		action:       action,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrSetAssignmentCommandIsNotConstructed)
}

func (c SetAssignmentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SetAssignmentCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c SetAssignmentCommand) SupervisorID() kernel.UUID {
	return c.supervisorID
}

func (c SetAssignmentCommand) Action() AssignmentAction {
	return c.action
}
