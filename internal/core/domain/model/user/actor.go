package user

import "fixit/internal/core/domain/model/kernel"

// Actor is the caller issuing a request. It is passed explicitly to every
// command and query; nothing reads the caller from ambient state.
type Actor struct {
	id            kernel.UUID
	role          Role
	authenticated bool
}

// Anonymous returns the actor of a request without valid credentials.
func Anonymous() Actor {
	return Actor{}
}

// NewActor returns an authenticated actor. It fails when the id or role is invalid.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, authenticated: true}, nil
}

func (a Actor) IsAuthenticated() bool {
	return a.authenticated
}

// ID is the zero UUID for anonymous actors.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role is RoleNone for anonymous actors.
func (a Actor) Role() Role {
	if !a.authenticated {
		return RoleNone
	}
	return a.role
}

// Is reports whether the actor is authenticated with the given role.
func (a Actor) Is(role Role) bool {
	return a.authenticated && a.role == role
}

// Owns reports whether the actor is authenticated and is the given owner.
func (a Actor) Owns(owner kernel.UUID) bool {
	return a.authenticated && a.id.IsEqual(owner)
}
