package commands

import (
	"context"

	"fixit/internal/core/domain/services"
)

type DeleteOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteOfferCommandHandler(uowFactory OfferUoWFactory) DeleteOfferCommandHandler {
	return DeleteOfferCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteOfferCommandHandler) Handle(ctx context.Context, cmd DeleteOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.DeleteOffer}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferRepository()
	o, err := repo.GetVisible(ctx, cmd.OfferID(), services.OfferVisibility(actor))
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
