package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateRatingCommandIsNotConstructed = errors.New(
	"CreateRatingCommand must be created via NewCreateRatingCommand constructor",
)

type CreateRatingCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	ratingID kernel.UUID
	orderID  kernel.UUID
	rate     int
	note     *string

	guard guard.ConstructorGuard
}

func NewCreateRatingCommand(
	actor user.Actor,
	ratingID, orderID kernel.UUID,
	rate int,
	note *string,
) (CreateRatingCommand, error) {
	if err := errors.Join(ratingID.Validate(), orderID.Validate()); err != nil {
		return CreateRatingCommand{}, err
	}

	return CreateRatingCommand{
		actor:    actor,
		ratingID: ratingID,
		orderID:  orderID,
		rate:     rate,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRatingCommand) Validate() error {
	return c.guard.Validate(ErrCreateRatingCommandIsNotConstructed)
}

func (c CreateRatingCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

func (c CreateRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateRatingCommand) Rate() int {
	return c.rate
}

func (c CreateRatingCommand) Note() *string {
	return c.note
}
