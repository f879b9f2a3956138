package commands

import (
	"errors"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UserPatch lists the account fields a caller may change. Nil leaves a field
// as it is; an empty string clears phone and photo. The role is not editable.
type UserPatch struct {
	Email          *string
	Password       *string
	FirstName      *string
	LastName       *string
	BirthDate      *time.Time
	Gender         *user.Gender
	Phone          *string
	Photo          *string
	WorkExperience *int
}

type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actor          user.Actor
	userID         kernel.UUID
	patch          UserPatch
	includeDeleted bool

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates an update of userID. Deleted users are only
// found when includeDeleted is set.
func NewUpdateUserCommand(actor user.Actor, userID kernel.UUID, patch UserPatch, includeDeleted bool) (UpdateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		actor:          actor,
		userID:         userID,
		patch:          patch,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateUserCommand) Patch() UserPatch {
	return c.patch
}

func (c UpdateUserCommand) IncludeDeleted() bool {
	return c.includeDeleted
}
