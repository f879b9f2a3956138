package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand adds an address owned by the caller. The owner is
// never taken from the request.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	actor     user.Actor
	addressID kernel.UUID
	line      string
	gps       kernel.GPSPosition
	cityID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateAddressCommand(
	actor user.Actor,
	addressID kernel.UUID,
	line string,
	gps kernel.GPSPosition,
	cityID kernel.UUID,
) (CreateAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return CreateAddressCommand{}, err
	}

	return CreateAddressCommand{
		actor:     actor,
		addressID: addressID,
		line:      line,
		gps:       gps,
		cityID:    cityID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c CreateAddressCommand) Line() string {
	return c.line
}

func (c CreateAddressCommand) GPS() kernel.GPSPosition {
	return c.gps
}

func (c CreateAddressCommand) CityID() kernel.UUID {
	return c.cityID
}
