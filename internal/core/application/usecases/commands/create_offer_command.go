package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand is a worker's bid on an order. There is no worker field:
// the offer always belongs to the calling actor.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	offerID kernel.UUID
	orderID kernel.UUID
	terms   offer.Terms

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(actor user.Actor, offerID, orderID kernel.UUID, terms offer.Terms) (CreateOfferCommand, error) {
	if err := errors.Join(offerID.Validate(), orderID.Validate()); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{
		actor:   actor,
		offerID: offerID,
		orderID: orderID,
		terms:   terms,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CreateOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOfferCommand) Terms() offer.Terms {
	return c.terms
}
