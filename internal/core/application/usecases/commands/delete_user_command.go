package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand soft deletes a user. With includeDeleted an already
// deleted user is found again and the delete is a no-op that keeps the
// original deletion time.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actor          user.Actor
	userID         kernel.UUID
	includeDeleted bool

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actor user.Actor, userID kernel.UUID, includeDeleted bool) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		actor:          actor,
		userID:         userID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c DeleteUserCommand) IncludeDeleted() bool {
	return c.includeDeleted
}
