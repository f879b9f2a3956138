package commands

import (
	"context"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

// UpdateAddressCommandHandler changes the caller's own address. Addresses of
// other users are reported as not found.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.UpdateAddress}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AddressRepository()
	a, err := loadOwnAddress(ctx, h.policy, repo, actor, services.UpdateAddress, cmd.AddressID())
	if err != nil {
		return nil, err
	}

	p := cmd.Patch()
	line, gps, cityID := a.Line(), a.GPS(), a.CityID()
	if p.Line != nil {
		line = *p.Line
	}
	if p.GPS != nil {
		gps = *p.GPS
	}
	if p.CityID != nil {
		cityID = *p.CityID
		if _, err = uow.CityRepository().Get(ctx, cityID); err != nil {
			return nil, asInvalidReference("city", err)
		}
	}

	if err = a.Change(line, gps, cityID); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

// loadOwnAddress fetches an address and masks it unless actor owns it.
func loadOwnAddress(
	ctx context.Context,
	policy services.AccessPolicy,
	repo ports.AddressRepository,
	actor user.Actor,
	action services.Action,
	id kernel.UUID,
) (*address.Address, error) {
	a, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := a.OwnerID()
	if err = policy.Authorize(actor, services.AccessRequest{Action: action, Owner: &owner}); err != nil {
		return nil, err
	}

	return a, nil
}
