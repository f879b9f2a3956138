package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrDeleteRatingCommandIsNotConstructed = errors.New(
	"DeleteRatingCommand must be created via NewDeleteRatingCommand constructor",
)

type DeleteRatingCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	ratingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRatingCommand(actor user.Actor, ratingID kernel.UUID) (DeleteRatingCommand, error) {
	if err := ratingID.Validate(); err != nil {
		return DeleteRatingCommand{}, err
	}

	return DeleteRatingCommand{actor: actor, ratingID: ratingID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRatingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRatingCommandIsNotConstructed)
}

func (c DeleteRatingCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}
