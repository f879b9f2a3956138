package commands

import (
	"context"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/services"
)

type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	policy     services.AccessPolicy
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.CreateAddress}); err != nil {
		return nil, err
	}

	a, err := address.NewAddress(cmd.AddressID(), cmd.Line(), cmd.GPS(), cmd.CityID(), actor.ID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CityRepository().Get(ctx, a.CityID()); err != nil {
		return nil, asInvalidReference("city", err)
	}

	if err = uow.AddressRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
