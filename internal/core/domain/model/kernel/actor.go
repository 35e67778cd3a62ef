package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the already-authenticated caller of an operation. It is threaded
// explicitly into every scope and lifecycle decision.
type Actor struct {
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

func NewActor(role Role, id UUID) (Actor, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) ID() UUID {
	return a.id
}

// Is reports whether the actor holds the role and identity given.
func (a Actor) Is(role Role, id UUID) bool {
	return a.role == role && a.id.IsEqual(id)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s %s", a.role, a.id)
}
