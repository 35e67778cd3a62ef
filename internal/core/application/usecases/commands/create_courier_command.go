package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a courier, optionally placing it on one or more
// supervisors' teams straight away.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(owner, kernel.NewUUID(), "Omar", "+966500000001", []kernel.UUID{supervisorID})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	c, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct {
	actor         kernel.Actor
	courierID     kernel.UUID
	name          string
	phone         string
	supervisorIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates identities. Name and phone are validated by
// the Courier aggregate itself.
func NewCreateCourierCommand(
	actor kernel.Actor,
	courierID kernel.UUID,
	name, phone string,
	supervisorIDs []kernel.UUID,
) (CreateCourierCommand, error) {
	errList := []error{actor.Validate(), courierID.Validate()}
	for _, id := range supervisorIDs {
		errList = append(errList, id.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return CreateCourierCommand{}, err
	}

	return CreateCourierCommand{
		actor:         actor,
		courierID:     courierID,
		name:          name,
		phone:         phone,
		supervisorIDs: supervisorIDs,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Phone() string {
	return c.phone
}

func (c CreateCourierCommand) SupervisorIDs() []kernel.UUID {
	return c.supervisorIDs
}
