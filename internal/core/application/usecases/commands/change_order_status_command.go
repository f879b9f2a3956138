package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"
	"fixit/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is the dedicated status change of an order.
//
// Example:
//
//	code := 2
//	cmd, err := NewChangeOrderStatusCommand(actor, orderID, &code)
//	if err != nil {
//	    // missing or unknown status
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand rejects a missing status code (nil) and codes
// that are not an order status.
func NewChangeOrderStatusCommand(actor user.Actor, orderID kernel.UUID, statusCode *int) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{actor: actor, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(statusCode),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Actor() user.Actor {
	return c.actor
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(code *int) error {
	if code == nil {
		return errs.NewValueIsRequiredError("status")
	}

	status, err := order.ParseStatus(*code)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
