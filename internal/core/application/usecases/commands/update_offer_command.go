package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrUpdateOfferCommandIsNotConstructed = errors.New(
	"UpdateOfferCommand must be created via NewUpdateOfferCommand constructor",
)

type UpdateOfferCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	offerID kernel.UUID
	patch   offer.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOfferCommand(actor user.Actor, offerID kernel.UUID, patch offer.Patch) (UpdateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return UpdateOfferCommand{}, err
	}

	return UpdateOfferCommand{actor: actor, offerID: offerID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOfferCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferCommandIsNotConstructed)
}

func (c UpdateOfferCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c UpdateOfferCommand) Patch() offer.Patch {
	return c.patch
}
