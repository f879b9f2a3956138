package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a new account. Field validation is left to the
// handler so that the role gate is decided first.
//
// Example:
//
//	cmd, err := NewCreateUserCommand(actor, kernel.NewUUID(), "a@b.c", "secret",
//	    user.Profile{FirstName: "Ann", LastName: "Lee"}, user.Customer)
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	userID   kernel.UUID
	email    string
	password string
	profile  user.Profile
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(
	actor user.Actor,
	userID kernel.UUID,
	email, password string,
	profile user.Profile,
	role user.Role,
) (CreateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		actor:    actor,
		userID:   userID,
		email:    email,
		password: password,
		profile:  profile,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c CreateUserCommand) Password() string {
	return c.password
}

func (c CreateUserCommand) Profile() user.Profile {
	return c.profile
}

func (c CreateUserCommand) Role() user.Role {
	return c.role
}
