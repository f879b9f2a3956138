package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// AddressPatch holds the address fields to change; nil keeps the current value.
type AddressPatch struct {
	Line   *string
	GPS    *kernel.GPSPosition
	CityID *kernel.UUID
}

type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	actor     user.Actor
	addressID kernel.UUID
	patch     AddressPatch

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(actor user.Actor, addressID kernel.UUID, patch AddressPatch) (UpdateAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return UpdateAddressCommand{}, err
	}

	return UpdateAddressCommand{
		actor:     actor,
		addressID: addressID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c UpdateAddressCommand) Patch() AddressPatch {
	return c.patch
}
