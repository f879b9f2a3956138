package user

import (
	"fmt"

	"fixit/internal/pkg/errs"
)

// Role is the closed set of user kinds. The numeric values are the codes
// exchanged with clients and stored in the users table.
type Role int

const (
	// RoleNone is the role of an unauthenticated caller. It is never stored.
	RoleNone Role = iota
	Customer
	Worker
	Admin
	TechnicalSupport
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleNone:         "None",
		Customer:         "Customer",
		Worker:           "Worker",
		Admin:            "Admin",
		TechnicalSupport: "Technical Support",
	}
}

// ParseRole converts a client-supplied code into an assignable Role.
func ParseRole(code int) (Role, error) {
	r := Role(code)
	if err := r.Validate(); err != nil {
		return RoleNone, err
	}
	return r, nil
}

// Validate accepts only the four assignable roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleNone {
		return errs.NewValueIsInvalidErrorWithCause("user_type", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

// IsPrivileged reports whether the role is allowed to see every order.
func (r Role) IsPrivileged() bool {
	return r == Admin || r == TechnicalSupport
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "None"
}
