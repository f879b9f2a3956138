package commands

import (
	"context"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/services"
)

type CreateCityCommandHandler struct {
	uowFactory CityUoWFactory
	policy     services.AccessPolicy
}

func NewCreateCityCommandHandler(uowFactory CityUoWFactory) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) (*address.City, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.AccessRequest{Action: services.CreateCity}); err != nil {
		return nil, err
	}

	city, err := address.NewCity(cmd.CityID(), cmd.Name())
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

	if err = uow.CityRepository().Add(ctx, city); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return city, nil
}
