package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the closed set of organisational roles an actor can hold.
type Role int

const (
	RoleUnknown Role = iota
	RoleOwner
	RoleSupervisor
	RoleCourier
	RoleCustomer
	RoleProvider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleOwner:      "owner",
		RoleSupervisor: "supervisor",
		RoleCourier:    "courier",
		RoleCustomer:   "customer",
		RoleProvider:   "provider",
	}
}

// ParseRole maps the wire name of a role to its value.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

func (r Role) Validate() error {
	switch r {
	case RoleOwner, RoleSupervisor, RoleCourier, RoleCustomer, RoleProvider:
		return nil
	case RoleUnknown:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}

// IsManager reports whether the role dispatches couriers (owner or supervisor).
func (r Role) IsManager() bool {
	return r == RoleOwner || r == RoleSupervisor
}
