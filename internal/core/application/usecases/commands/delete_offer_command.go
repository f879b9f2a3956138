package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrDeleteOfferCommandIsNotConstructed = errors.New(
	"DeleteOfferCommand must be created via NewDeleteOfferCommand constructor",
)

type DeleteOfferCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOfferCommand(actor user.Actor, offerID kernel.UUID) (DeleteOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return DeleteOfferCommand{}, err
	}

	return DeleteOfferCommand{actor: actor, offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOfferCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfferCommandIsNotConstructed)
}

func (c DeleteOfferCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}
