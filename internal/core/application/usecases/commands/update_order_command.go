package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is the generic order update.
//
// fields holds every field name present in the request body, known or not,
// so the customer allow-list can reject names even when their value would
// not change anything.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	patch   order.Patch
	fields  []string

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	actor user.Actor,
	orderID kernel.UUID,
	patch order.Patch,
	fields []string,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		actor:   actor,
		orderID: orderID,
		patch:   patch,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c UpdateOrderCommand) Fields() []string {
	return c.fields
}
