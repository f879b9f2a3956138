package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateCityCommandIsNotConstructed = errors.New(
	"CreateCityCommand must be created via NewCreateCityCommand constructor",
)

type CreateCityCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	cityID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

func NewCreateCityCommand(actor user.Actor, cityID kernel.UUID, name string) (CreateCityCommand, error) {
	if err := cityID.Validate(); err != nil {
		return CreateCityCommand{}, err
	}

	return CreateCityCommand{
		actor:  actor,
		cityID: cityID,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCityCommandIsNotConstructed)
}

func (c CreateCityCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateCityCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c CreateCityCommand) Name() string {
	return c.name
}
