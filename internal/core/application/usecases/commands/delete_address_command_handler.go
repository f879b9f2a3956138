package commands

import (
	"context"

	"fixit/internal/core/domain/services"
)

type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.DeleteAddress}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()
	a, err := loadOwnAddress(ctx, h.policy, repo, actor, services.DeleteAddress, cmd.AddressID())
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
